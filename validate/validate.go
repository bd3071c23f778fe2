// Copyright 2024-2026 The gce-deleter Authors
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

package validate

import (
	"fmt"
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var (
	// zonePattern Compute Engineのゾーン名(例: us-central1-a)
	zonePattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*[0-9]+-[a-z]$`)
	// resourceNamePattern RFC1035準拠のリソース名
	resourceNamePattern = regexp.MustCompile(`^[a-z]([-a-z0-9]{0,61}[a-z0-9])?$`)
	// resourceIDPattern 数値のリソースID
	resourceIDPattern = regexp.MustCompile(`^[0-9]{1,20}$`)
	// projectPattern プロジェクトID(ドメインスコープ付きのIDも許容する)
	projectPattern = regexp.MustCompile(`^([a-z0-9.-]+:)?[a-z][-a-z0-9]{4,28}[a-z0-9]$`)
)

var validatorInstance = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("name"), ",", 2)[0]
		if name == "" {
			// nameタグがない場合はyamlタグを参照
			name = strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"gce_zone":    zoneValidator,
		"gce_name":    resourceNameValidator,
		"gce_project": projectValidator,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Printf("Init validator failed: %s", err)
		}
	}
	return v
}()

func zoneValidator(fl validator.FieldLevel) bool {
	return IsZone(fl.Field().String())
}

func resourceNameValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return resourceNamePattern.MatchString(s) || resourceIDPattern.MatchString(s)
}

func projectValidator(fl validator.FieldLevel) bool {
	return projectPattern.MatchString(fl.Field().String())
}

// IsZone sがCompute Engineのゾーン名として妥当な形式であればtrueを返す
func IsZone(s string) bool {
	return zonePattern.MatchString(s)
}

// RegionOf ゾーン名からリージョン名を返す
//
// 妥当なゾーン名でない場合は空文字を返す
func RegionOf(zone string) string {
	if !IsZone(zone) {
		return ""
	}
	return zone[:strings.LastIndex(zone, "-")]
}

func validate(v interface{}) error {
	return validatorInstance.Struct(v)
}

// Struct vのバリデーションを行い、エラーがあればmultierrorにまとめて返す
func Struct(v interface{}) error {
	errs := StructWithMultiError(v)
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		if _, ok := errs[0].(*validator.InvalidValidationError); ok {
			return errs[0]
		}
	}
	return multierror.Append(&multierror.Error{}, errs...).ErrorOrNil()
}

// StructWithMultiError vのバリデーションを行い、フィールドごとのエラーのスライスを返す
func StructWithMultiError(v interface{}) []error {
	err := validate(v)
	if err == nil {
		return nil
	}
	// see https://github.com/go-playground/validator/blob/f6584a41c8acc5dfc0b62f7962811f5231c11530/_examples/simple/main.go#L59-L65
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return []error{err}
	}

	var errors []error
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, errorFromValidationErr(err))
	}
	return errors
}

func errorFromValidationErr(err validator.FieldError) error {
	namespaces := strings.Split(err.Namespace(), ".")
	actualName := namespaces[len(namespaces)-1] // .で区切った末尾の要素

	param := err.Param()
	detail := err.ActualTag()
	if param != "" {
		detail += "=" + param
	}

	// detailがvalidatorのタグ名だけの場合の対応をここで行う。
	switch detail {
	case "file":
		detail = fmt.Sprintf("invalid file path: %v", err.Value())
	case "gce_zone":
		detail = fmt.Sprintf("invalid zone: %q", err.Value())
	case "gce_name":
		detail = fmt.Sprintf("invalid resource name: %q", err.Value())
	case "gce_project":
		detail = fmt.Sprintf("invalid project id: %q", err.Value())
	}

	return newError(actualName, detail)
}

func newError(name, message string) error {
	return Errorf("%s: %s", name, message)
}
