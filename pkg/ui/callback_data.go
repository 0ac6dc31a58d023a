package ui

import (
	"errors"
	"strconv"
	"strings"
)

const (
	CallbackPrefix     = "w:"
	MaxCallbackDataLen = 64
)

type Kind string

const (
	KindRemove  Kind = "rm"
	KindKeep    Kind = "keep"
	KindConfirm Kind = "yes"
	KindDecline Kind = "no"
)

// Action is a decoded inline button press. WordID ties the press to the
// question or deletion it was rendered for.
type Action struct {
	Kind   Kind
	WordID uint
}

// IsChoice reports whether the action answers the remove-or-keep prompt.
func (a Action) IsChoice() bool {
	return a.Kind == KindRemove || a.Kind == KindKeep
}

var (
	errInvalidPrefix       = errors.New("invalid callback prefix")
	errInvalidAction       = errors.New("invalid callback action")
	errInvalidValue        = errors.New("invalid callback value")
	errCallbackDataTooLong = errors.New("callback data too long")
)

func BuildRemoveCallback(wordID uint) (string, error) {
	return buildCallback(KindRemove, wordID)
}

func BuildKeepCallback(wordID uint) (string, error) {
	return buildCallback(KindKeep, wordID)
}

func BuildConfirmDeleteCallback(wordID uint) (string, error) {
	return buildCallback(KindConfirm, wordID)
}

func BuildDeclineDeleteCallback(wordID uint) (string, error) {
	return buildCallback(KindDecline, wordID)
}

func ParseCallbackData(data string) (Action, error) {
	if data == "" {
		return Action{}, errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return Action{}, errCallbackDataTooLong
	}
	if !strings.HasPrefix(data, CallbackPrefix) {
		return Action{}, errInvalidPrefix
	}

	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return Action{}, errInvalidAction
	}
	kind, err := parseKind(parts[1])
	if err != nil {
		return Action{}, err
	}
	if !isASCIIUnsignedInt(parts[2]) {
		return Action{}, errInvalidValue
	}
	value, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil || value == 0 {
		return Action{}, errInvalidValue
	}
	return Action{Kind: kind, WordID: uint(value)}, nil
}

func buildCallback(kind Kind, wordID uint) (string, error) {
	if _, err := parseKind(string(kind)); err != nil {
		return "", err
	}
	if wordID == 0 {
		return "", errInvalidValue
	}
	data := CallbackPrefix + string(kind) + ":" + strconv.FormatUint(uint64(wordID), 10)
	return validateCallbackData(data)
}

func validateCallbackData(data string) (string, error) {
	if data == "" {
		return "", errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return "", errCallbackDataTooLong
	}
	return data, nil
}

func parseKind(part string) (Kind, error) {
	switch Kind(part) {
	case KindRemove:
		return KindRemove, nil
	case KindKeep:
		return KindKeep, nil
	case KindConfirm:
		return KindConfirm, nil
	case KindDecline:
		return KindDecline, nil
	default:
		return "", errInvalidAction
	}
}

func isASCIIUnsignedInt(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
