package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	ConfigCatalogSource = "catalog_source"
	ConfigSuggestLimit  = "suggest_limit"
)

var knownConfigKeys = map[string]bool{
	ConfigCatalogSource: true,
	ConfigSuggestLimit:  true,
}

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	if !knownConfigKeys[key] {
		return fmt.Errorf("unknown config key %q", key)
	}
	value = strings.TrimSpace(value)
	if key == ConfigSuggestLimit && value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer", ConfigSuggestLimit)
		}
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// ResolveCatalogSource picks override when set, then the persisted
// catalog_source, then fallback.
func ResolveCatalogSource(db *sql.DB, override, fallback string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return v, nil
	}
	v, found, err := GetConfig(db, ConfigCatalogSource)
	if err != nil {
		return "", err
	}
	if found && v != "" {
		return v, nil
	}
	return fallback, nil
}

// ResolveSuggestLimit picks override when > 0, then the persisted
// suggest_limit, then 0 (the catalog default).
func ResolveSuggestLimit(db *sql.DB, override int) (int, error) {
	if override > 0 {
		return override, nil
	}
	v, found, err := GetConfig(db, ConfigSuggestLimit)
	if err != nil {
		return 0, err
	}
	if !found || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("stored %s %q is not a non-negative integer", ConfigSuggestLimit, v)
	}
	return n, nil
}
