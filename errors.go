/*
 * errors.go, part of godock.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
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
 * goDock is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package dock

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding and retrieving info from the
//error, without changing its type or wrapping it around something else.
//Each call decorates the error with the caller's name, plus, optionally, any
//relevant extra information, in the format "FunctionName: Extra info".
//If passed an empty string, Decorate just returns the current decoration
//slice without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error type of the dock package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty string only queries the slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error invalidates the whole calculation,
//or can be worked around (say, by skipping one matching group).
func (err *CError) Critical() bool { return err.critical }

//errDecorate asserts that an error implements Error and decorates it
//with the caller's name before returning it. Calling it on an error
//produced outside this module is a bug, so it panics in that case.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		panic("errDecorate: got an error from outside goDock: " + err.Error())
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It satisfies the error interface,
//but for returned errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData           = PanicMsg("goDock: Nil data given")
	ErrNodeOutOfRange    = PanicMsg("goDock: Mesh node index out of range")
	ErrPatchOutOfRange   = PanicMsg("goDock: Patch index out of range")
	ErrNotHomogeneous4x4 = PanicMsg("goDock: A Transform needs a 4x4 homogeneous matrix")
)
