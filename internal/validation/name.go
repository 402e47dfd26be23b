// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches addon, extension and command names
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

type emptyStringValidator struct {
	fieldName  string
	fieldValue string
}

// NewEmptyStringValidator fails when the field value is blank
func NewEmptyStringValidator(fieldName, fieldValue string) Validator {
	return &emptyStringValidator{fieldName: fieldName, fieldValue: fieldValue}
}

// Validate checks the field value
func (v emptyStringValidator) Validate() error {
	if strings.TrimSpace(v.fieldValue) == "" {
		return fmt.Errorf("the [%s] is required", v.fieldName)
	}
	return nil
}

type nameValidator struct {
	fieldName  string
	fieldValue string
}

// NewNameValidator fails when the value is not a valid identifier.
// A valid name starts with a letter or underscore and then holds
// letters, digits, underscores or dashes.
func NewNameValidator(fieldName, fieldValue string) Validator {
	return &nameValidator{fieldName: fieldName, fieldValue: fieldValue}
}

// Validate checks the name
func (v nameValidator) Validate() error {
	if err := NewEmptyStringValidator(v.fieldName, v.fieldValue).Validate(); err != nil {
		return err
	}
	if !namePattern.MatchString(v.fieldValue) {
		return fmt.Errorf("the [%s] value (%s) is not a valid name", v.fieldName, v.fieldValue)
	}
	return nil
}
