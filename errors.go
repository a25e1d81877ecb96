/*
 * errors.go, part of gochem.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package xtal

import "fmt"

//Error is the error type returned by this package. Besides the message it
//carries a "decoration": the list of functions the error has passed through,
//and whether the error is critical, i.e. whether the reconstruction can't go on.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s (in %v)", err.message, err.deco)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Is allows errors.Is to match an Error against the package-level ones,
//regardless of decoration and of any detail added to the message.
func (err Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		tp, okp := target.(*Error)
		if !okp || tp == nil {
			return false
		}
		t = *tp
	}
	return len(err.message) >= len(t.message) && err.message[:len(t.message)] == t.message
}

//newError returns a critical error with the given message, plus the details, if any,
//decorated with the caller's name.
func newError(message, caller string, details ...string) Error {
	if len(details) > 0 {
		message = message + ": " + details[0]
	}
	return Error{message, []string{caller}, true}
}

//newSoftError is as newError, but the error is not critical: the
//operation that returned it can be skipped.
func newSoftError(message, caller string, details ...string) Error {
	e := newError(message, caller, details...)
	e.critical = false
	return e
}

//errDecorate adds caller to the decoration of err, if err is an Error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case Error:
		e.Decorate(caller)
		return e
	case *Error:
		e.Decorate(caller)
		return e
	}
	return err
}

//Messages for the critical errors.
const (
	DegenerateCell = "degenerate unit cell"
	NoReflections  = "no resolution limit: no usable reflections"
	NoSymmetry     = "missing symmetry operators"
	GridTooLarge   = "grid dimensions exceed the allowed maximum"
	BadSymOp       = "malformed symmetry operator"
	Unresolved     = "reflection can't be resolved"
	TransformFail  = "Fourier transform failed"
)

//Errors to be used with errors.Is.
var (
	ErrDegenerateCell = Error{message: DegenerateCell, critical: true}
	ErrNoReflections  = Error{message: NoReflections, critical: true}
	ErrNoSymmetry     = Error{message: NoSymmetry, critical: true}
	ErrGridTooLarge   = Error{message: GridTooLarge, critical: true}
	ErrBadSymOp       = Error{message: BadSymOp, critical: true}
	ErrTransformFail  = Error{message: TransformFail, critical: true}
	ErrUnresolved     = Error{message: Unresolved, critical: false}
)

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape     = PanicMsg("goChem/xtal: Grid shape mismatch")
	ErrNilGrid   = PanicMsg("goChem/xtal: Given nil grid")
	ErrOutOfGrid = PanicMsg("goChem/xtal: Index out of the grid")
)
