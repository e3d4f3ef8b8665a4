package ports

// Defines an interface for the file system operations the checksum
// workflow performs. Implementations must not retry failed reads.
type FileSystemPort interface {
	// Reads the entire file at path into memory.
	ReadFile(path string) ([]byte, error)
}
