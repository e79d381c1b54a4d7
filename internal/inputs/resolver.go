package inputs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
)

// Resolved — полный набор путей входных и выходных файлов одного
// запуска. Строится Resolve и дальше не меняется.
type Resolved struct {
	// Category — категория страны, по которой подобраны файлы.
	Category domain.Category

	// AdminFile — файл административных границ страны (/A:).
	AdminFile string

	// WpopArchive — gzip-архив плотности населения.
	WpopArchive string

	// WpopText — распакованный текстовый файл плотности
	// (в каталоге кэшей, вход /D: в фазе setup).
	WpopText string

	// WpopBin — бинарный кэш плотности населения
	// (/M: в фазе setup, /D: в фазе resume).
	WpopBin string

	// PreParamFile — pre-parameter файл семейства страны (/PP:).
	PreParamFile string

	// BaselineFile — файл параметров без вмешательств (p_NoInt.txt).
	BaselineFile string

	// ControlFile — файл параметров сценария вмешательства (/P:).
	ControlFile string

	// SchoolFile — файл расположения школ; непустой только для США.
	SchoolFile string

	// NetworkBin — бинарный кэш начального состояния сети
	// (/S: в фазе setup, /L: в фазе resume).
	NetworkBin string

	// OutputBase — префикс output-файлов симулятора (/O:).
	OutputBase string

	// OutputFile — итоговый TSV-файл со статистикой по времени.
	OutputFile string
}

// Resolve выводит пути всех файлов из конфигурации и проверяет
// существование обязательных входов.
//
// Возвращает *MissingInputError при первом отсутствующем файле;
// порядок проверок повторяет оригинальный драйвер (admin → население
// → pre-parameter → baseline → сценарий → школы).
func Resolve(cfg *config.Config) (*Resolved, error) {
	category := domain.Classify(cfg.Country)
	r := &Resolved{Category: category}

	r.AdminFile = filepath.Join(cfg.DataDir, "admin_units", cfg.Country+"_admin.txt")
	if !fileExists(r.AdminFile) {
		return nil, &MissingInputError{
			Purpose:  fmt.Sprintf("Unable to find admin file for country: %s", cfg.Country),
			DirLabel: "Data directory",
			Dir:      cfg.DataDir,
			Path:     r.AdminFile,
		}
	}

	root := category.WpopRoot()
	r.WpopArchive = filepath.Join(cfg.DataDir, "populations", fmt.Sprintf("wpop_%s.txt.gz", root))
	if !fileExists(r.WpopArchive) {
		return nil, &MissingInputError{
			Purpose:  fmt.Sprintf("Unable to find population file for country: %s", cfg.Country),
			DirLabel: "Data directory",
			Dir:      cfg.DataDir,
			Path:     r.WpopArchive,
		}
	}

	r.WpopText = filepath.Join(cfg.NetworkDir, fmt.Sprintf("wpop_%s.txt", root))
	r.WpopBin = filepath.Join(cfg.NetworkDir, fmt.Sprintf("%s_pop_density.bin", cfg.Country))

	r.PreParamFile = filepath.Join(cfg.ParamDir, category.ParamFamily().PreParamFile())
	if !fileExists(r.PreParamFile) {
		return nil, &MissingInputError{
			Purpose:  "Unable to find pre-parameter file",
			DirLabel: "Param directory",
			Dir:      cfg.ParamDir,
			Path:     r.PreParamFile,
		}
	}

	r.BaselineFile = filepath.Join(cfg.ParamDir, "p_NoInt.txt")
	if !fileExists(r.BaselineFile) {
		return nil, &MissingInputError{
			Purpose:  "Unable to find parameter file",
			DirLabel: "Param directory",
			Dir:      cfg.ParamDir,
			Path:     r.BaselineFile,
		}
	}

	r.ControlFile = filepath.Join(cfg.ParamDir, fmt.Sprintf("p_%s.txt", cfg.Params.Scenario))
	if !fileExists(r.ControlFile) {
		return nil, &MissingInputError{
			Purpose:  "Unable to find parameter file",
			DirLabel: "Param directory",
			Dir:      cfg.ParamDir,
			Path:     r.ControlFile,
		}
	}

	if category.NeedsSchoolFile() {
		r.SchoolFile = filepath.Join(cfg.DataDir, "populations", "USschools.txt")
		if !fileExists(r.SchoolFile) {
			return nil, &MissingInputError{
				Purpose:  fmt.Sprintf("Unable to find school file for country: %s", cfg.Country),
				DirLabel: "Data directory",
				Dir:      cfg.DataDir,
				Path:     r.SchoolFile,
			}
		}
	}

	r0 := domain.FormatParam(cfg.Params.R0)
	r.NetworkBin = filepath.Join(cfg.NetworkDir,
		fmt.Sprintf("Network_%s_T%d_R%s.bin", cfg.Country, cfg.Threads, r0))

	r.OutputBase = filepath.Join(cfg.OutputDir,
		fmt.Sprintf("%s_%s_R0=%s", cfg.Country, cfg.Params.Scenario, r0))
	r.OutputFile = r.OutputBase + ".avNE.severity.xls"

	return r, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
