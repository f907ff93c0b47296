package httpapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/memoryscramble/board-engine/board"
)

var namedTransforms = map[string]board.Transform{
	"uppercase": func(_ context.Context, v string) (string, error) {
		return strings.ToUpper(v), nil
	},
	"lowercase": func(_ context.Context, v string) (string, error) {
		return strings.ToLower(v), nil
	},
	"reverse": func(_ context.Context, v string) (string, error) {
		runes := []rune(v)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	},
}

func lookupTransform(name string) (board.Transform, error) {
	f, ok := namedTransforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", name)
	}
	return f, nil
}
