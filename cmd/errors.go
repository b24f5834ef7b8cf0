/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func TaxIDArgError(arg string, err error) error {
	msg := "Argument <em>%s</em> is not a valid NCBI taxonomy ID"
	vars := []any{arg}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxIDArgError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse taxon ID %q: %w",
			fn.Name(), arg, err),
	}
}

func UnknownTaxonError(id int) error {
	msg := "Taxon <em>%d</em> is not in the taxonomy"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownTaxonError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown taxon %d", fn.Name(), id),
	}
}

func NameNotFoundError(name string) error {
	msg := "Name <em>%s</em> is not found in the taxonomy"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NameNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: name %q not found", fn.Name(), name),
	}
}

func EmptyDatabaseError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg: `<err>Database appears to be empty.</err>
   Run <em>'gntaxa create'</em> first to initialize the schema.`,
		Err: fmt.Errorf("from %s: %w", fn.Name(),
			errors.New("cannot push data into empty database")),
	}
}
