// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"html/template"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/fyyur/pkg/pointer"
)

// Display layouts.
const (
	displayTime = "Mon Jan 2, 2006 3:04PM"
	inputTime   = "2006-01-02T15:04"
)

var funcs = template.FuncMap{
	"datetime": func(value time.Time) string {
		return value.Format(displayTime)
	},
	"inputTime": func(value time.Time) string {
		if value.IsZero() {
			return ""
		}
		return value.Format(inputTime)
	},
	"deref": pointer.Val[string],
	"hasString": func(values []string, value string) bool {
		return slices.Contains(values, value)
	},
	"join": func(values []string, separator string) string {
		return strings.Join(values, separator)
	},
}
