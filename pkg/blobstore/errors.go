package blobstore

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrContainerNotFound indicates the named container does not exist
	ErrContainerNotFound = errors.New("container not found")

	// ErrPreconditionFailed indicates a conditional read failed its precondition
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrNotModified indicates the stored blob does not satisfy a freshness condition
	ErrNotModified = errors.New("not modified")

	// ErrInvalidArgument indicates a malformed or unsupported request argument
	ErrInvalidArgument = errors.New("invalid argument")
)

// ContainerError represents an error related to container operations
type ContainerError struct {
	Container string
	Op        string
	Err       error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("container operation %s failed for container %s: %v", e.Op, e.Container, e.Err)
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}

// BlobError represents an error related to blob operations
type BlobError struct {
	Container string
	Key       string
	Op        string
	Err       error
}

func (e *BlobError) Error() string {
	return fmt.Sprintf("blob operation %s failed for %s/%s: %v", e.Op, e.Container, e.Key, e.Err)
}

func (e *BlobError) Unwrap() error {
	return e.Err
}
