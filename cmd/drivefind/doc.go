// Command drivefind resolves Google Drive file identifiers to local paths on
// machines running Drive for Desktop.
package main
