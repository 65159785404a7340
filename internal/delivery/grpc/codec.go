package grpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Struct numbers are doubles; integers beyond this bound cannot round trip.
const maxExactInteger = 1 << 53

var errNumberOutOfRange = errors.New("number exceeds the exact integer range of a protobuf Struct")

// ToStruct converts a JSON-tagged record into a protobuf Struct using the
// same field names as the HTTP API.
func ToStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not encode record: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	fields := map[string]interface{}{}
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("could not encode record: %w", err)
	}
	normalized, err := normalizeNumbers(fields)
	if err != nil {
		return nil, fmt.Errorf("could not encode record: %w", err)
	}
	return structpb.NewStruct(normalized.(map[string]interface{}))
}

// normalizeNumbers replaces json.Number values with float64, rejecting
// integers that a double cannot hold exactly.
func normalizeNumbers(v interface{}) (interface{}, error) {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			if i > maxExactInteger || i < -maxExactInteger {
				return nil, fmt.Errorf("%s: %w", value, errNumberOutOfRange)
			}
			return float64(i), nil
		}
		return value.Float64()
	case map[string]interface{}:
		for k, item := range value {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			value[k] = n
		}
		return value, nil
	case []interface{}:
		for i, item := range value {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			value[i] = n
		}
		return value, nil
	default:
		return v, nil
	}
}

// checkNumbers rejects decoded numbers that may already have lost precision.
func checkNumbers(v *structpb.Value) error {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if math.Abs(kind.NumberValue) > maxExactInteger {
			return fmt.Errorf("%v: %w", kind.NumberValue, errNumberOutOfRange)
		}
	case *structpb.Value_StructValue:
		for _, field := range kind.StructValue.GetFields() {
			if err := checkNumbers(field); err != nil {
				return err
			}
		}
	case *structpb.Value_ListValue:
		for _, item := range kind.ListValue.GetValues() {
			if err := checkNumbers(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromStruct decodes a protobuf Struct into a JSON-tagged record.
func FromStruct(s *structpb.Struct, v interface{}) error {
	if s == nil {
		return errors.New("could not decode record: missing struct")
	}
	if err := checkNumbers(structpb.NewStructValue(s)); err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	return nil
}

// ToList converts records into a ListValue of Structs.
func ToList[T any](records []T) (*structpb.ListValue, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(records))}
	for i := range records {
		s, err := ToStruct(&records[i])
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return list, nil
}

// FromList decodes a ListValue of Structs.
func FromList[T any](list *structpb.ListValue) ([]T, error) {
	records := make([]T, 0, len(list.GetValues()))
	for i, value := range list.GetValues() {
		s := value.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("could not decode list entry %d: not a struct", i)
		}
		var record T
		if err := FromStruct(s, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
