package model

import (
	"github.com/YuminosukeSato/compactforest/pkg/errors"
)

// CompileState はビルダーのコンパイル状態を表す
type CompileState int

const (
	// NotCompiled はまだ Compile() が呼ばれていない状態
	NotCompiled CompileState = iota
	// Compiled は Compile() が一度呼ばれた状態（成功・失敗を問わない）
	Compiled
)

// String は状態名を返す
func (s CompileState) String() string {
	if s == Compiled {
		return "compiled"
	}
	return "not_compiled"
}

// BaseCompiler は一度だけコンパイルできるビルダーの基底となる構造体
type BaseCompiler struct {
	state CompileState
}

// IsCompiled は Compile() が既に呼ばれたかどうかを返す
func (c *BaseCompiler) IsCompiled() bool {
	return c.state == Compiled
}

// State は現在のコンパイル状態を返す
func (c *BaseCompiler) State() CompileState {
	return c.state
}

// BeginCompile はビルダーをコンパイル済み状態に移す。
// 既にコンパイル済みの場合は FailedPrecondition エラーを返す。
// 失敗したコンパイルもビルダーを使用不能にする。
func (c *BaseCompiler) BeginCompile(op string) error {
	if c.state == Compiled {
		return errors.NewAlreadyCompiledError(op)
	}
	c.state = Compiled
	return nil
}
