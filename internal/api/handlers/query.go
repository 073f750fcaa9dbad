package handlers

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParsePagination читает limit и offset из query параметров
// Отсутствующие параметры возвращаются нулями, нормализация - на стороне сервиса
func ParsePagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", s)
		}
	}

	if s := q.Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", s)
		}
	}

	return limit, offset, nil
}
