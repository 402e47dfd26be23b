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
	"testing"

	"github.com/stretchr/testify/suite"
)

type validationTestSuite struct {
	suite.Suite
}

func TestValidation(t *testing.T) {
	suite.Run(t, new(validationTestSuite))
}

func (s *validationTestSuite) TestNewChain() {
	s.Run("new chain without option", func() {
		chain := New()
		s.Assert().NotNil(chain)
	})
	s.Run("new chain with options", func() {
		chain := New(FailFast())
		s.Assert().True(chain.failFast)
		chain2 := New(AllErrors())
		s.Assert().False(chain2.failFast)
	})
}

func (s *validationTestSuite) TestAddAssertion() {
	chain := New()
	s.Assert().Empty(chain.validators)
	chain.AddAssertion(true, "")
	s.Assert().Len(chain.validators, 1)
}

func (s *validationTestSuite) TestValidate() {
	s.Run("with single validator", func() {
		err := New().AddValidator(NewEmptyStringValidator("field", "")).Validate()
		s.Assert().EqualError(err, "the [field] is required")
	})
	s.Run("with multiple validators and FailFast option", func() {
		chain := New(FailFast()).
			AddValidator(NewEmptyStringValidator("field", "")).
			AddAssertion(false, "this is false")
		err := chain.Validate()
		s.Assert().Nil(chain.violations)
		s.Assert().EqualError(err, "the [field] is required")
	})
	s.Run("with multiple validators and AllErrors option", func() {
		chain := New(AllErrors()).
			AddValidator(NewEmptyStringValidator("field", "")).
			AddAssertion(false, "this is false")
		err := chain.Validate()
		s.Assert().EqualError(err, "the [field] is required; this is false")
	})
}

func (s *validationTestSuite) TestNameValidator() {
	s.Run("valid names", func() {
		for _, name := range []string{"greeter", "simple_echo", "_hidden", "my-ext2"} {
			s.Assert().NoError(NewNameValidator("name", name).Validate(), name)
		}
	})
	s.Run("invalid names", func() {
		for _, name := range []string{"", "   ", "2fast", "a.b", "a/b", "with space"} {
			s.Assert().Error(NewNameValidator("name", name).Validate(), name)
		}
	})
	s.Run("blank name reports required", func() {
		s.Assert().EqualError(NewNameValidator("addon", "").Validate(), "the [addon] is required")
	})
}
