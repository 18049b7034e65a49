// Package writer delivers serialized export documents to their destination.
//
// The Saver interface is the boundary the export driver hands finished
// documents to; FileSaver is the disk-backed implementation.
package writer
