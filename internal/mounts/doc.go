// Package mounts discovers Drive for Desktop mount points and turns metadata
// segment chains into on-disk paths.
//
// Mount points are the GoogleDrive-* directories under CloudStorage. Search
// roots are ranked so traversal starts in the mirrored My Drive tree, then
// shared drives, then the rest of each mount. Segment matching tolerates
// NFC/NFD differences between the metadata store and the filesystem.
package mounts
