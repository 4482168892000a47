package model

import "errors"

// ErrModuleNotFound is returned when a target module name does not resolve
// to the root or any sub-module of a project.
var ErrModuleNotFound = errors.New("module not found")

// ErrFileSystem is returned when a declared root exists but cannot be
// inspected. Skipping it silently would produce an incomplete watch set, so
// the whole invocation aborts instead.
var ErrFileSystem = errors.New("file system error")
