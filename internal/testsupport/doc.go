// Package testsupport provides shared fixtures for drivefind tests: temp
// configs, seeded DriveFS metadata databases, and fake mount trees.
package testsupport
