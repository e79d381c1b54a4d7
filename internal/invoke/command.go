package invoke

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
	"github.com/shaiso/Epirun/internal/inputs"
)

// Invocation — полностью собранная командная строка симулятора.
// Неизменяема после Build; потребляется стадией выполнения ровно
// один раз.
type Invocation struct {
	// Exe — путь к исполняемому файлу симулятора.
	Exe string

	// Args — упорядоченный список токенов (флаги + позиционные seeds).
	Args []string
}

// token — один токен командной строки симулятора.
// Пустой flag означает позиционный токен.
type token struct {
	flag  string
	value string
}

func (t token) render() string {
	if t.flag == "" {
		return t.value
	}
	return t.flag + t.value
}

// Build собирает Invocation из конфигурации и разрешённых путей.
//
// Общий блок (потоки, admin-файл, школы для США) не зависит от фазы.
// Фазовый блок берётся из декларативной таблицы: setup подаёт
// текстовую плотность на вход и пишет бинарные кэши, resume читает
// бинарные кэши и добавляет CLP-переопределения. Оба блока
// завершаются четырьмя RNG seed.
func Build(cfg *config.Config, r *inputs.Resolved) *Invocation {
	tokens := []token{
		{"/c:", strconv.Itoa(cfg.Threads)},
		{"/A:", r.AdminFile},
	}
	if r.SchoolFile != "" {
		tokens = append(tokens, token{"/s:", r.SchoolFile})
	}

	tokens = append(tokens, phaseTokens(cfg, r)[cfg.Phase]...)

	for _, seed := range cfg.Params.Seeds {
		tokens = append(tokens, token{"", strconv.FormatInt(seed, 10)})
	}

	args := make([]string, len(tokens))
	for i, t := range tokens {
		args[i] = t.render()
	}

	return &Invocation{Exe: cfg.SimulatorPath, Args: args}
}

// phaseTokens возвращает таблицу фазовых блоков токенов.
func phaseTokens(cfg *config.Config, r *inputs.Resolved) map[domain.Phase][]token {
	spatialRate := domain.FormatParam(cfg.Params.SpatialRate())

	return map[domain.Phase][]token{
		domain.PhaseSetup: {
			{"/PP:", r.PreParamFile},
			{"/P:", r.ControlFile},
			{"/O:", r.OutputBase},
			{"/D:", r.WpopText}, // текстовая плотность на входе
			{"/M:", r.WpopBin},  // куда сохранить бинарную плотность
			{"/S:", r.NetworkBin},
			{"/R:", spatialRate},
			{"/BM:", "PNG"},
		},
		domain.PhaseResume: {
			{"/PP:", r.PreParamFile},
			{"/P:", r.ControlFile},
			{"/O:", r.OutputBase},
			{"/D:", r.WpopBin}, // бинарная плотность (ускорение)
			{"/L:", r.NetworkBin},
			{"/R:", spatialRate},
			{"/CLP1:", domain.FormatParam(cfg.Params.QuarantineCompliance)},
			{"/CLP2:", domain.FormatParam(cfg.Params.SpatialContactRate)},
			{"/CLP3:", domain.FormatParam(cfg.Params.IsolationProportion)},
		},
	}
}

// CommandLine возвращает командную строку одной строкой для логов.
func (inv *Invocation) CommandLine() string {
	return fmt.Sprintf("%s %s", inv.Exe, strings.Join(inv.Args, " "))
}
