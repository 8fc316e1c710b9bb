package usecase

import (
	"context"
	"strings"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type GetDictionariesUseCase struct{}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{}
}

func (uc *GetDictionariesUseCase) Execute(ctx context.Context) (*domain.Dictionaries, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetDictionaries"})

	ucLogger.Info("Use case started", nil)

	caser := cases.Title(language.English)
	dicts := &domain.Dictionaries{
		PropertyTypes:   dictionaryOf(caser, domain.PropertyTypes),
		InquiryStatuses: dictionaryOf(caser, domain.InquiryStatuses),
		Roles:           dictionaryOf(caser, domain.Roles),
	}

	ucLogger.Info("Use case finished successfully", nil)
	return dicts, nil
}

// dictionaryOf превращает код "pet_friendly" в подпись "Pet Friendly"
func dictionaryOf[T ~string](caser cases.Caser, codes []T) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, 0, len(codes))
	for _, code := range codes {
		label := strings.ReplaceAll(string(code), "_", " ")
		items = append(items, domain.DictionaryItem{
			Code: string(code),
			Name: caser.String(label),
		})
	}
	return items
}
