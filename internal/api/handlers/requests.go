package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodySize предельный размер тела запроса (1 MB)
const maxBodySize = 1 << 20

// DecodeJSON декодирует JSON тело запроса в dst
// Неизвестные поля отклоняются, чтобы опечатки в именах полей не
// превращались молча в отсутствующие фильтры
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
