package schedule

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// key ключ кэша: расписание хранится отдельно на каждую неделю репетитора
type key struct {
	tutorID   int64
	weekStart string // YYYY-MM-DD
}

type entry struct {
	record   *domain.ScheduleRecord
	storedAt time.Time
}

// Cache LRU-кэш недельных расписаний с TTL
// Записи иммутабельны: при рефетче запись заменяется целиком.
// TTL гарантирует, что устаревшая неделя не переживет смену недели надолго
type Cache struct {
	mu    sync.RWMutex
	cache *lru.Cache[key, entry]
	ttl   time.Duration
	log   Logger

	// подменяется в тестах
	now func() time.Time
}

// New создает кэш на size записей с временем жизни ttl
func New(size int, ttl time.Duration, log Logger) (*Cache, error) {
	c, err := lru.New[key, entry](size)
	if err != nil {
		return nil, fmt.Errorf("schedule cache: %w", err)
	}

	return &Cache{
		cache: c,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}, nil
}

// Get возвращает закэшированное расписание недели, если оно еще живо
func (c *Cache) Get(tutorID int64, weekStart time.Time) (*domain.ScheduleRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	k := key{tutorID: tutorID, weekStart: weekStart.Format(domain.DateFormat)}

	e, ok := c.cache.Get(k)
	if !ok {
		c.log.Debug("schedule cache: miss tutor=%d week=%s", tutorID, k.weekStart)
		return nil, false
	}

	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		c.log.Debug("schedule cache: expired tutor=%d week=%s", tutorID, k.weekStart)
		return nil, false
	}

	c.log.Debug("schedule cache: hit tutor=%d week=%s", tutorID, k.weekStart)
	return e.record, true
}

// Store сохраняет расписание недели, заменяя прежнюю запись целиком
func (c *Cache) Store(record *domain.ScheduleRecord) {
	if record == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := key{
		tutorID:   record.TutorID,
		weekStart: record.WeekStart.Format(domain.DateFormat),
	}

	c.cache.Add(k, entry{record: record, storedAt: c.now()})
}

// Len возвращает текущее количество записей
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cache.Len()
}
