// Package cloudwriter streams dataset snapshots to object storage. Writers
// buffer locally and upload on Close, since snapshot exports are small
// enough to hold in memory.
package cloudwriter

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
