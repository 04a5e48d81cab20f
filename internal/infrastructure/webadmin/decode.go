package webadmin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
)

// decodePage extrae el arreglo field y la paginación. Acepta también `content`
// (página estilo Spring) o un arreglo desnudo.
func decodePage(raw json.RawMessage, field string) (*ports.RawPage, error) {
	raw = bytes.TrimSpace(raw)
	page := &ports.RawPage{Items: []json.RawMessage{}}
	if len(raw) == 0 || string(raw) == "null" {
		return page, nil
	}
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return nil, err
		}
		page.TotalElements = int64(len(page.Items))
		if len(page.Items) > 0 {
			page.TotalPages = 1
		}
		return page, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	arr, ok := obj[field]
	if !ok {
		arr, ok = obj["content"]
	}
	if ok && string(arr) != "null" {
		if err := json.Unmarshal(arr, &page.Items); err != nil {
			return nil, fmt.Errorf("campo %s: %w", field, err)
		}
	}
	total, err := decodeCount(obj, "totalElements")
	if err != nil {
		return nil, err
	}
	pages, err := decodeCount(obj, "totalPages")
	if err != nil {
		return nil, err
	}
	page.TotalElements = total
	page.TotalPages = int(pages)
	return page, nil
}

// decodeCount lee un contador de paginación que el API envía como número o como
// cadena numérica ("12"). Ausente o null vale 0.
func decodeCount(obj map[string]json.RawMessage, key string) (int64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, nil
	}
	s := string(bytes.TrimSpace(v))
	if s == "null" || s == `""` {
		return 0, nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if err := json.Unmarshal(v, &s); err != nil {
			return 0, fmt.Errorf("campo %s: %w", key, err)
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("campo %s: valor no numérico %q", key, s)
	}
	return n, nil
}

// decodeSlice decodifica un arreglo que puede venir desnudo o dentro de alguna de las claves dadas.
func decodeSlice(raw json.RawMessage, out interface{}, keys ...string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '[' {
		return json.Unmarshal(raw, out)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return err
	}
	for _, k := range append(keys, "content", "list") {
		if v, ok := obj[k]; ok {
			return json.Unmarshal(v, out)
		}
	}
	return fmt.Errorf("respuesta sin arreglo (%v)", keys)
}

// decodeFlag lee un booleano desnudo o dentro de alguna de las claves dadas.
func decodeFlag(raw json.RawMessage, keys ...string) (bool, error) {
	raw = bytes.TrimSpace(raw)
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false, err
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if err := json.Unmarshal(v, &b); err != nil {
				return false, fmt.Errorf("campo %s: %w", k, err)
			}
			return b, nil
		}
	}
	return false, fmt.Errorf("respuesta sin indicador (%v)", keys)
}
