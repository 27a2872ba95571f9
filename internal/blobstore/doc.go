// Package blobstore keeps content-addressed blobs in Badger for the local
// content gateway. Blobs are keyed by their content id and never change
// once written.
package blobstore
