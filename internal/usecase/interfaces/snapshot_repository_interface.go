package interfaces

import "context"

// ISnapshotRepository abstracts key-value persistence for the working
// quote snapshot.
//
// The quoting service must be able to:
//   - restore the last saved snapshot at startup
//   - write the snapshot after every pricing recomputation and on the
//     autosave interval
//
// Load returns (nil, nil) when nothing has been stored yet.

type ISnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
