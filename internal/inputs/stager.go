package inputs

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
)

// Stager готовит файловую систему к запуску симулятора.
type Stager struct {
	logger *slog.Logger
}

// NewStager создаёт Stager.
func NewStager(logger *slog.Logger) *Stager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stager{logger: logger}
}

// Stage выполняет все подготовительные шаги:
//  1. создаёт каталоги результатов и кэшей (идемпотентно);
//  2. в фазе setup удаляет устаревшие кэши;
//  3. распаковывает архив плотности населения в каталог кэшей.
func (s *Stager) Stage(cfg *config.Config, r *Resolved) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.MkdirAll(cfg.NetworkDir, 0o755); err != nil {
		return fmt.Errorf("create network dir: %w", err)
	}

	if cfg.Phase == domain.PhaseSetup {
		s.cleanCaches(r)
	}

	if err := s.decompress(r.WpopArchive, r.WpopText); err != nil {
		return fmt.Errorf("decompress population file: %w", err)
	}

	return nil
}

// cleanCaches удаляет кэши перед регенерацией. Отсутствие файла —
// не ошибка.
func (s *Stager) cleanCaches(r *Resolved) {
	for _, path := range []string{r.WpopText, r.WpopBin, r.NetworkBin} {
		if err := tryRemove(path); err != nil {
			s.logger.Warn("failed to remove stale cache", "path", path, "error", err)
		}
	}
}

// decompress распаковывает gzip-архив src в dst, перезаписывая
// существующий файл. Дескрипторы закрываются на всех путях выхода.
func (s *Stager) decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("open gzip %s: %w", src, err)
	}
	defer gz.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, gz); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	s.logger.Debug("population file decompressed", "src", src, "dst", dst)
	return nil
}

// tryRemove удаляет файл, молча игнорируя его отсутствие.
func tryRemove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
