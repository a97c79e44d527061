package view

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("view: position out of range")
	ErrUnbound    = errors.New("view: iterator not bound to a view")
)

// RangeError 记录越界的操作、位置和当时视图的长度
type RangeError struct {
	Op  string
	Pos int
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("view: %s: position %d out of range [0, %d)", e.Op, e.Pos, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(op string, pos, length int) *RangeError {
	return &RangeError{Op: op, Pos: pos, Len: length}
}
