package voxel

import "errors"

// The error taxonomy from spec §7. Workers never panic on these; they are
// returned to the foreground thread, which logs and reconciles state.
var (
	ErrOutOfBounds     = errors.New("voxel: coordinate out of bounds")
	ErrPoolExhausted   = errors.New("voxel: chunk pool exhausted")
	ErrUnknownChunk    = errors.New("voxel: unknown chunk")
	ErrMeshApplyFailed = errors.New("voxel: mesh apply failed")
	ErrNoiseFailure    = errors.New("voxel: noise source failure")
	ErrChunkBusy       = errors.New("voxel: chunk busy with another phase")
)
