package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// MaxBodyBytes ограничение размера тела запроса
const MaxBodyBytes = 1 << 20

var validate = validator.New()

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// Validate проверяет теги `validate` структуры, возвращает ошибки по полям
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	result := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		result[fe.Field()] = fe.Tag()
	}
	return result
}

// PathID извлекает положительный int64 параметр пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// ParseInterval собирает начало и конец из даты и времени суток ("HH:MM", "HH:MM:SS" или ISO datetime).
// Datetime переводится в UTC и должен приходиться на date
func ParseInterval(date, startHour, endHour string) (time.Time, time.Time, error) {
	day, err := types.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := parseClock(day, startHour)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startHour: %w", err)
	}
	end, err := parseClock(day, endHour)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endHour: %w", err)
	}
	return start, end, nil
}

func parseClock(day time.Time, value string) (time.Time, error) {
	return types.ClockOn(day, strings.TrimSpace(value))
}
