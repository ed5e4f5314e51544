package editor

import "errors"

var (
	// ErrNoImage is returned by operations that need a loaded source image.
	ErrNoImage = errors.New("editor: no image loaded")
	// ErrSnapshotIndex is returned when restoring a snapshot that does not exist.
	ErrSnapshotIndex = errors.New("editor: snapshot index out of range")
	// ErrUnknownPreset is returned by ApplyPreset for names not in the registry.
	ErrUnknownPreset = errors.New("editor: unknown preset")
	// ErrUnknownFormat is returned by Export for unsupported encodings.
	ErrUnknownFormat = errors.New("editor: unknown export format")
)
