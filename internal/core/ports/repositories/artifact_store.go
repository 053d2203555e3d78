package repositories

import "context"

// ArtifactStore abstracts the durable file store used for generated
// statements and profile images. A write replaces any prior artifact of the
// same name.
type ArtifactStore interface {
	// Save writes a named binary artifact, overwriting any existing one.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// List returns the names of the stored artifacts.
	List(ctx context.Context) ([]string, error)

	// Remove deletes a named artifact if it exists.
	Remove(ctx context.Context, name string) error
}
