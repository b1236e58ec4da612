package xgo

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON 全局统一的 json 编解码（兼容标准库行为）
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON converts any value to a JSON string.
// If encoding fails, it returns the error string.
func ToJSON(v any) string {
	j, err := JSON.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(j)
}
