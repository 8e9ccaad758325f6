/*
 * errors.go, part of oercorr.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package corr

import (
	"errors"
	"fmt"
)

//The two kinds of failure the corrections can have. Use errors.Is
//to tell them apart.
var (
	//A value of the wrong type or shape: not a string, not a list, not a real number.
	ErrInvalidArgumentType = errors.New("invalid argument type")
	//A value of the right type, but outside its domain: empty name or list, T <= 0.
	ErrInvalidArgumentValue = errors.New("invalid argument value")
)

//Messages. Keep them stable, old logs are grepped for them.
const (
	MsgNameType        = "The name of the adsorbed specimen must be a string."
	MsgNameEmpty       = "The name of the adsorbate must contain at least one character."
	MsgFreqsType       = "Frequencies must be of type List."
	MsgFreqsEmpty      = "The list of frequencies must contain at least one value."
	MsgFreqElementType = "Frequencies must be floating point values. Invalid element: %v."
	MsgTempType        = "Temperature must be a floating point value."
	MsgTempValue       = "Temperature must be a positive value."
)

//Error is the error returned by all functions in this module.
//It keeps the goChem "decoration" mechanism, which allows adding the names of
//the functions an error went through, and also supports the errors package
//(it unwraps to one of the ErrInvalidArgument* sentinels).
type Error struct {
	message string
	kind    error
	deco    []string
}

//NewError returns an *Error of the given kind (ErrInvalidArgumentType or
//ErrInvalidArgumentValue) with a message built from format and args.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind}
}

func (E *Error) Error() string {
	return E.message
}

//Unwrap returns the kind of the error.
func (E *Error) Unwrap() error {
	return E.kind
}

//Decorate adds deco to the list of functions/info the error went through, and returns
//the list. If deco is empty, it only returns the current list.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//errDecorate decorates err if it is an *Error. It returns err.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
