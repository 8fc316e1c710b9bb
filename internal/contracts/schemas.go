package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

// Имена контрактов. Версия у всех пока одна.
const (
	CreatePropertyRequest      = "CreatePropertyRequest"
	UpdatePropertyRequest      = "UpdatePropertyRequest"
	CreateInquiryRequest       = "CreateInquiryRequest"
	UpdateInquiryStatusRequest = "UpdateInquiryStatusRequest"
	UpdateProfileRequest       = "UpdateProfileRequest"

	InquiryCreatedEvent       = "InquiryCreatedEvent"
	InquiryStatusChangedEvent = "InquiryStatusChangedEvent"

	V1 = "1.0.0"
)

var loadSchemas = sync.OnceValues(compileSchemas)

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	paths := make([]string, 0)
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		key, err := keyFromPath(path)
		if err != nil {
			return nil, err
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		compiled[key] = schema
	}
	return compiled, nil
}

// keyFromPath: "schemas/events/inquiry-created/v1.json" -> "InquiryCreatedEvent/1.0.0",
// "schemas/requests/create-property/v1.json" -> "CreatePropertyRequest/1.0.0"
func keyFromPath(path string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("unexpected schema path %q", path)
	}

	var suffix string
	switch parts[0] {
	case "events":
		suffix = "Event"
	case "requests":
		suffix = "Request"
	default:
		return "", fmt.Errorf("unknown schema kind %q in %q", parts[0], path)
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, word := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(word))
	}
	name.WriteString(suffix)

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return name.String() + "/" + version, nil
}

func validate(name, version string, body []byte) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[name+"/"+version]
	if !ok {
		return fmt.Errorf("schema for %s version %s not found", name, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ValidateRequest проверяет тело HTTP-запроса
func ValidateRequest(name, version string, body []byte) error {
	return validate(name, version, body)
}

// ValidateEvent проверяет сообщение перед публикацией
func ValidateEvent(eventType, version string, body []byte) error {
	return validate(eventType, version, body)
}

// Load компилирует все схемы заранее, чтобы ошибка в схеме всплыла при старте
func Load() error {
	_, err := loadSchemas()
	return err
}
