// Package secureview : клиентский анти-эксфильтрационный монитор сессии
// просмотра. Сдерживание, а не граница безопасности: подавление захвата,
// движущийся водяной знак, реакция на потерю видимости. Активен только для
// shared-сессий; для владельца все методы — no-op.
package secureview

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"
)

// AuditReporter : канал доставки подозрительных событий в журнал доступа.
// Ошибки доставки проглатываются — просмотр не деградирует из-за журнала.
type AuditReporter interface {
	ReportSuspicious(ctx context.Context, contentUUID string, reason Reason) error
}

// WatermarkPosition : позиция знака в процентах от поверхности просмотра
type WatermarkPosition struct {
	TopPct  float64
	LeftPct float64
}

// FixedWatermarks : неподвижные полупрозрачные повторы знака — страховка на
// случай, если движущийся знак попадёт под обрезку кадра
var FixedWatermarks = []WatermarkPosition{
	{TopPct: 10, LeftPct: 50},
	{TopPct: 60, LeftPct: 10},
	{TopPct: 40, LeftPct: 70},
}

// Config : параметры сессии просмотра
type Config struct {
	SubjectUUID  string
	SubjectEmail string
	ContentUUID  string
	OwnerSession bool

	// ExpiresIn : стартовое значение счётчика до истечения signed URL, сек.
	// Счётчик чисто индикативный: настоящий срок URL обрывает хранилище.
	ExpiresIn int

	// PauseMedia вызывается при потере видимости поверхности
	PauseMedia func()

	WatermarkInterval time.Duration
	CountdownInterval time.Duration
}

// Monitor : периодические задачи сессии с явным жизненным циклом Start/Stop,
// привязанным к монтированию поверхности просмотра
type Monitor struct {
	cfg      Config
	reporter AuditReporter
	rnd      *rand.Rand

	positions chan WatermarkPosition

	mu           sync.Mutex
	started      bool
	interstitial bool
	remaining    int
	cancel       context.CancelFunc
	done         chan struct{}
}

func NewMonitor(cfg Config, reporter AuditReporter) *Monitor {
	if cfg.WatermarkInterval <= 0 {
		cfg.WatermarkInterval = 3 * time.Second
	}
	if cfg.CountdownInterval <= 0 {
		cfg.CountdownInterval = time.Second
	}

	return &Monitor{
		cfg:       cfg,
		reporter:  reporter,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		positions: make(chan WatermarkPosition, 1),
		remaining: cfg.ExpiresIn,
	}
}

// Start : запускает таймеры водяного знака и счётчика. Для owner-сессии —
// no-op: владелец смотрит свой контент без ограничений.
func (m *Monitor) Start(ctx context.Context) {
	if m.cfg.OwnerSession {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	m.started = true

	go m.run(runCtx)
}

// Stop : снимает все таймеры; обязателен при демонтаже поверхности просмотра,
// иначе таймеры утекут. Идемпотентен.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	cancel := m.cancel
	done := m.done
	m.mu.Unlock()

	cancel()
	<-done
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	watermark := time.NewTicker(m.cfg.WatermarkInterval)
	defer watermark.Stop()

	countdown := time.NewTicker(m.cfg.CountdownInterval)
	defer countdown.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-watermark.C:
			m.publishPosition(m.randomPosition())
		case <-countdown.C:
			m.mu.Lock()
			if m.remaining > 0 {
				m.remaining--
			}
			m.mu.Unlock()
		}
	}
}

// randomPosition : знак остаётся в безопасных отступах поверхности:
// top в [5, 75), left в [5, 65)
func (m *Monitor) randomPosition() WatermarkPosition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return WatermarkPosition{
		TopPct:  m.rnd.Float64()*70 + 5,
		LeftPct: m.rnd.Float64()*60 + 5,
	}
}

func (m *Monitor) publishPosition(pos WatermarkPosition) {
	// поверхность могла не успеть прочитать предыдущую позицию — вытесняем
	select {
	case <-m.positions:
	default:
	}
	m.positions <- pos
}

// WatermarkUpdates : канал позиций движущегося знака для поверхности просмотра
func (m *Monitor) WatermarkUpdates() <-chan WatermarkPosition {
	return m.positions
}

// WatermarkText : идентичность и время — любой захват экрана несёт
// атрибуцию источника
func (m *Monitor) WatermarkText(now time.Time) string {
	email := m.cfg.SubjectEmail
	if email == "" {
		email = "unknown"
	}
	return fmt.Sprintf("%s • %s", email, now.Format("02.01.2006 15:04:05"))
}

// InterceptKey : перехват комбинаций захвата/инспекции. Возвращает true, если
// комбинацию нужно подавить; каждый перехват даёт одно событие журнала.
func (m *Monitor) InterceptKey(ctx context.Context, combo KeyCombo) bool {
	if m.cfg.OwnerSession {
		return false
	}

	reason, blocked := classifyKey(combo)
	if !blocked {
		return false
	}

	m.report(ctx, reason)
	return true
}

// SetVisible : реакция на потерю видимости вкладки/окна: пауза медиа,
// блокирующая заставка и одно событие журнала на каждый случай
func (m *Monitor) SetVisible(ctx context.Context, visible bool) {
	if m.cfg.OwnerSession || visible {
		return
	}

	m.mu.Lock()
	m.interstitial = true
	m.mu.Unlock()

	if m.cfg.PauseMedia != nil {
		m.cfg.PauseMedia()
	}

	m.report(ctx, ReasonVisibilityLost)
}

// InterstitialShown : заставка «продолжить просмотр» активна, пока
// пользователь её не закроет
func (m *Monitor) InterstitialShown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interstitial
}

func (m *Monitor) DismissWarning() {
	m.mu.Lock()
	m.interstitial = false
	m.mu.Unlock()
}

// Remaining : индикативный счётчик секунд до истечения signed URL.
// Для решений безопасности не используется — срок обрывает хранилище.
func (m *Monitor) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remaining
}

// ResetCountdown : вызывается после refresh, когда выдан новый signed URL
func (m *Monitor) ResetCountdown(expiresIn int) {
	m.mu.Lock()
	m.remaining = expiresIn
	m.mu.Unlock()
}

func (m *Monitor) report(ctx context.Context, reason Reason) {
	if m.reporter == nil {
		return
	}
	if err := m.reporter.ReportSuspicious(ctx, m.cfg.ContentUUID, reason); err != nil {
		// сбой журнала не должен мешать просмотру
		log.Printf("[secureview] не удалось отправить событие %s: %v", reason, err)
	}
}
