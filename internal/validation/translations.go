// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"reflect"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	translations := []struct {
		tag             string
		translation     string
		customRegisFunc validator.RegisterTranslationsFunc
		customTransFunc validator.TranslationFunc
	}{
		{
			tag: "gt",
			customRegisFunc: func(ut ut.Translator) error {
				return ut.Add("gt-duration", "{0} must be greater than {1}", false)
			},
			customTransFunc: func(ut ut.Translator, fe validator.FieldError) string {
				var (
					translation string
					err         error
				)

				if fe.Type() == reflect.TypeOf(time.Duration(0)) {
					translation, err = ut.T("gt-duration", fe.Field(), fe.Param())
				} else {
					translation, err = ut.T("gt-number", fe.Field(), fe.Param())
				}

				if err != nil {
					return fe.Error()
				}

				return translation
			},
		},
		{
			tag:         "required_with",
			translation: "{0} is a required field if {1} is set",
			customTransFunc: func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
				if err != nil {
					return fe.Error()
				}

				return t
			},
		},
	}

	for _, entry := range translations {
		regFunc := entry.customRegisFunc
		if regFunc == nil {
			regFunc = registrationFunc(entry.tag, entry.translation, true)
		}

		transFunc := entry.customTransFunc
		if transFunc == nil {
			transFunc = translateFunc
		}

		if err := validate.RegisterTranslation(entry.tag, trans, regFunc, transFunc); err != nil {
			return err
		}
	}

	return nil
}

func registrationFunc(tag string, translation string, override bool) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, translation, override)
	}
}

func translateFunc(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return t
}
