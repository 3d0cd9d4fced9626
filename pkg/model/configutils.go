package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	duration "github.com/xhit/go-str2duration"
)

// Bool custom bool for toml/env configs
type Bool struct {
	Value bool
}

// UnmarshalText method satisfying toml unmarshal interface
// пустое значение - false, остальное разбирается strconv.ParseBool
func (d *Bool) UnmarshalText(text []byte) error {
	t := strings.TrimSpace(string(text))
	if t == "" {
		d.Value = false
		return nil
	}
	v, err := strconv.ParseBool(t)
	if err != nil {
		return fmt.Errorf("invalid bool value %q: %w", t, err)
	}
	d.Value = v
	return nil
}

func (d Bool) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(d.Value)), nil
}

func (d Bool) V() bool {
	return d.Value
}

// Duration custom duration for toml/env configs
// понимает в том числе дни и недели (1d, 2w)
type Duration struct {
	Value time.Duration
}

// UnmarshalText method satisfying toml unmarshal interface
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	t := strings.TrimSpace(string(text))
	if t == "" {
		d.Value = 0
		return nil
	}
	// если получили только цифру - считаем что это секунды
	if _, errA := strconv.Atoi(t); errA == nil {
		t = t + "s"
	}
	d.Value, err = duration.Str2Duration(t)
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Value.String()), nil
}

// Int custom int for toml/env configs
type Int struct {
	Value int
}

// UnmarshalText method satisfying toml unmarshal interface
func (d *Int) UnmarshalText(text []byte) error {
	tt := strings.TrimSpace(string(text))
	if tt == "" {
		d.Value = 0
		return nil
	}
	i, err := strconv.Atoi(tt)
	d.Value = i
	return err
}

func (d Int) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(d.Value)), nil
}
