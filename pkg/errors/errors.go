// Package errors はツリーコンパイラと推論エンジン全体のエラーハンドリングを提供します。
// すべてのエラーは cockroachdb/errors でスタックトレースを付与され、
// OutOfRange / InvalidArgument / FailedPrecondition のいずれかのカテゴリでマークされます。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	エラーカテゴリ
//
// ===========================================================================

var (
	// ErrOutOfRange はインデックスが宣言された範囲外の場合のカテゴリです。
	ErrOutOfRange = New("out of range")

	// ErrInvalidArgument は引数が不正な場合のカテゴリです（重複使用、不完全なツリーなど）。
	ErrInvalidArgument = New("invalid argument")

	// ErrFailedPrecondition は操作の前提条件が満たされていない場合のカテゴリです。
	ErrFailedPrecondition = New("failed precondition")
)

// 個別のエラー
var (
	// ErrEmptyTree はノード数0のツリーをコンパイルしようとした場合のエラーです。
	ErrEmptyTree = New("empty tree")

	// ErrIncompleteTree はノードとして設定されていない、または子として参照されていないインデックスがある場合のエラーです。
	ErrIncompleteTree = New("incomplete tree")

	// ErrDuplicateUse は同じインデックスをノードまたは子として二度使用した場合のエラーです。
	ErrDuplicateUse = New("duplicate use")

	// ErrAlreadyCompiled は Compile() を二度呼び出した場合のエラーです。
	ErrAlreadyCompiled = New("already compiled")

	// ErrEmptyInput は行数0の入力行列が渡された場合のエラーです。
	ErrEmptyInput = New("empty input")
)

// Kind はエラーのカテゴリ名を返します。どのカテゴリにも属さない場合は空文字列です。
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfRange):
		return "OutOfRange"
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrFailedPrecondition):
		return "FailedPrecondition"
	default:
		return ""
	}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// IndexOutOfRangeError はノードインデックスが [0, Bound) の範囲外の場合のエラーです。
type IndexOutOfRangeError struct {
	Op    string
	Param string // "id", "left", "right"
	Index int
	Bound int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("compactforest: %s: %s=%d is out of range [0, %d)", e.Op, e.Param, e.Index, e.Bound)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *IndexOutOfRangeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("param", e.Param).
		Int("index", e.Index).
		Int("bound", e.Bound).
		Str("type", "IndexOutOfRangeError")
}

// NewIndexOutOfRangeError は新しいIndexOutOfRangeErrorを作成し、スタックトレースを付与します。
func NewIndexOutOfRangeError(op, param string, index, bound int) error {
	err := &IndexOutOfRangeError{Op: op, Param: param, Index: index, Bound: bound}
	return errors.Mark(errors.WithStack(err), ErrOutOfRange)
}

// DuplicateUseError は同じインデックスがノードまたは子として再利用された場合のエラーです。
type DuplicateUseError struct {
	Op    string
	Index int
	Role  string // "node" または "child"
}

func (e *DuplicateUseError) Error() string {
	return fmt.Sprintf("compactforest: %s: index %d is already used as a %s", e.Op, e.Index, e.Role)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DuplicateUseError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Str("role", e.Role).
		Str("type", "DuplicateUseError")
}

// NewDuplicateUseError は新しいDuplicateUseErrorを作成し、スタックトレースを付与します。
func NewDuplicateUseError(op string, index int, role string) error {
	err := &DuplicateUseError{Op: op, Index: index, Role: role}
	return errors.Mark(errors.Mark(errors.WithStack(err), ErrDuplicateUse), ErrInvalidArgument)
}

// IncompleteTreeError はコンパイル時にツリーが一つに連結されていない場合のエラーです。
type IncompleteTreeError struct {
	Index  int
	Reason string
}

func (e *IncompleteTreeError) Error() string {
	return fmt.Sprintf("compactforest: compile: index %d %s", e.Index, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *IncompleteTreeError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("index", e.Index).
		Str("reason", e.Reason).
		Str("type", "IncompleteTreeError")
}

// NewIncompleteTreeError は新しいIncompleteTreeErrorを作成し、スタックトレースを付与します。
func NewIncompleteTreeError(index int, reason string) error {
	err := &IncompleteTreeError{Index: index, Reason: reason}
	return errors.Mark(errors.Mark(errors.WithStack(err), ErrIncompleteTree), ErrInvalidArgument)
}

// PreconditionError は操作の前提条件違反（空のツリー、二度目のコンパイル）を表します。
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("compactforest: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *PreconditionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "PreconditionError")
}

// NewEmptyTreeError はノード数0のツリーに対するエラーを作成します。
func NewEmptyTreeError(op string) error {
	err := &PreconditionError{Op: op, Reason: "tree has no nodes"}
	return errors.Mark(errors.Mark(errors.WithStack(err), ErrEmptyTree), ErrFailedPrecondition)
}

// NewAlreadyCompiledError は二度目の Compile() に対するエラーを作成します。
func NewAlreadyCompiledError(op string) error {
	err := &PreconditionError{Op: op, Reason: "already compiled"}
	return errors.Mark(errors.Mark(errors.WithStack(err), ErrAlreadyCompiled), ErrFailedPrecondition)
}

// NewEmptyInputError は空の入力に対するエラーを作成します。
func NewEmptyInputError(op string) error {
	err := errors.Newf("compactforest: %s: input has no rows", op)
	return errors.Mark(errors.Mark(err, ErrEmptyInput), ErrInvalidArgument)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
