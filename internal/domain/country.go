package domain

// Category — категория страны, определяющая семейство входных файлов.
//
// Классификация тотальна: любая страна попадает ровно в одну категорию.
// Страны вне специальных списков относятся к CategoryEurope.
type Category int

const (
	// CategoryEurope — категория по умолчанию (европейский набор данных).
	CategoryEurope Category = iota

	// CategoryUnitedStates — континентальные США.
	CategoryUnitedStates

	// CategoryCanada — Канада (делит файл плотности населения с США).
	CategoryCanada

	// CategoryUSATerritories — территории США (Аляска, Гавайи и т.д.).
	CategoryUSATerritories

	// CategoryNigeria — Нигерия (отдельный набор admin-уровня 1).
	CategoryNigeria
)

// ParamFamily — семейство pre-parameter файлов симулятора.
type ParamFamily string

const (
	// ParamFamilyUS — параметры для США.
	ParamFamilyUS ParamFamily = "US"

	// ParamFamilyNigeria — параметры для Нигерии.
	ParamFamilyNigeria ParamFamily = "NGA"

	// ParamFamilyUK — параметры по умолчанию (Великобритания).
	ParamFamilyUK ParamFamily = "UK"
)

// Списки стран, требующих специальной обработки.
var (
	unitedStates = map[string]bool{
		"United_States": true,
	}

	canada = map[string]bool{
		"Canada": true,
	}

	usaTerritories = map[string]bool{
		"Alaska":            true,
		"Hawaii":            true,
		"Guam":              true,
		"Virgin_Islands_US": true,
		"Puerto_Rico":       true,
		"American_Samoa":    true,
	}

	nigeria = map[string]bool{
		"Nigeria": true,
	}
)

// Classify возвращает категорию страны по её имени.
//
// Функция тотальна: неизвестные страны получают CategoryEurope.
// Списки взаимоисключающие, поэтому порядок проверок не влияет
// на результат.
func Classify(country string) Category {
	switch {
	case unitedStates[country]:
		return CategoryUnitedStates
	case canada[country]:
		return CategoryCanada
	case usaTerritories[country]:
		return CategoryUSATerritories
	case nigeria[country]:
		return CategoryNigeria
	default:
		return CategoryEurope
	}
}

// String возвращает строковое представление категории.
func (c Category) String() string {
	switch c {
	case CategoryUnitedStates:
		return "united_states"
	case CategoryCanada:
		return "canada"
	case CategoryUSATerritories:
		return "usa_territories"
	case CategoryNigeria:
		return "nigeria"
	default:
		return "eur"
	}
}

// WpopRoot возвращает корень имени файла плотности населения
// (wpop_<root>.txt.gz) для категории.
func (c Category) WpopRoot() string {
	switch c {
	case CategoryUnitedStates, CategoryCanada:
		return "usacan"
	case CategoryUSATerritories:
		return "us_terr"
	case CategoryNigeria:
		return "nga_adm1"
	default:
		return "eur"
	}
}

// ParamFamily возвращает семейство pre-parameter файлов для категории.
// Только континентальные США используют семейство US; территории США
// и Канада получают семейство по умолчанию.
func (c Category) ParamFamily() ParamFamily {
	switch c {
	case CategoryUnitedStates:
		return ParamFamilyUS
	case CategoryNigeria:
		return ParamFamilyNigeria
	default:
		return ParamFamilyUK
	}
}

// NeedsSchoolFile возвращает true, если для категории обязателен
// файл расположения школ (только континентальные США).
func (c Category) NeedsSchoolFile() bool {
	return c == CategoryUnitedStates
}

// PreParamFile возвращает имя pre-parameter файла семейства.
// Файл не меняется между запусками и откалиброван под R0=2.0.
func (f ParamFamily) PreParamFile() string {
	switch f {
	case ParamFamilyUS:
		return "preUS_R0=2.0.txt"
	case ParamFamilyNigeria:
		return "preNGA_R0=2.0.txt"
	default:
		return "preUK_R0=2.0.txt"
	}
}
