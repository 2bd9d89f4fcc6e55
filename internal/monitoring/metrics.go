package monitoring

import (
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Service reports runtime, database, and disk health for the API
// process. The store handle is injected at construction.
type Service struct {
	db        *sql.DB
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC       string `json:"timestamp_utc"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	HTTPActiveRequests int64  `json:"http_active_requests"`
	HTTPTotalRequests  uint64 `json:"http_total_requests"`
	DBOpenConnections  int    `json:"db_open_connections"`
	DBInUseConnections int    `json:"db_in_use_connections"`
	DBWaitCount        int64  `json:"db_wait_count"`
	Goroutines         int    `json:"goroutines"`
	GoMemoryAllocBytes uint64 `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes   uint64 `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes   uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32 `json:"go_gc_count"`
	UsersTotal         int64  `json:"users_total"`
	IcebergsTotal      int64  `json:"icebergs_total"`
	ResponsesTotal     int64  `json:"responses_total"`
	DBSizeBytes        int64  `json:"db_size_bytes"`
	DiskTotalBytes     uint64 `json:"disk_total_bytes"`
	DiskFreeBytes      uint64 `json:"disk_free_bytes"`
}

func NewService(db *sql.DB, startedAt time.Time) *Service {
	return &Service{db: db, startedAt: startedAt}
}

func (s *Service) StatusText() string {
	dbState := "ok"
	if err := s.db.Ping(); err != nil {
		dbState = "error: " + err.Error()
	}

	uptime := time.Since(s.startedAt).Round(time.Second)
	activeHTTP, totalHTTP := getHTTPStats()
	stats := s.db.Stats()

	return strings.Join([]string{
		"Aware API Server Status",
		fmt.Sprintf("Uptime: %s", uptime),
		fmt.Sprintf("DB: %s", dbState),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("DB open connections: %d", stats.OpenConnections),
		fmt.Sprintf("Go goroutines: %d", runtime.NumGoroutine()),
	}, "\n")
}

func (s *Service) ConnectionsText() string {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()

	return strings.Join([]string{
		"Aware API Connections",
		fmt.Sprintf("DB MaxOpenConnections: %d", stats.MaxOpenConnections),
		fmt.Sprintf("DB OpenConnections: %d", stats.OpenConnections),
		fmt.Sprintf("DB InUse: %d", stats.InUse),
		fmt.Sprintf("DB Idle: %d", stats.Idle),
		fmt.Sprintf("DB WaitCount: %d", stats.WaitCount),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
	}, "\n")
}

func (s *Service) RuntimeText() string {
	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	return strings.Join([]string{
		"Aware API Runtime",
		fmt.Sprintf("Go version: %s", runtime.Version()),
		fmt.Sprintf("CPU cores: %d", runtime.NumCPU()),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		fmt.Sprintf("Memory alloc: %s", formatBytes(int64(memory.Alloc))),
		fmt.Sprintf("Memory sys: %s", formatBytes(int64(memory.Sys))),
		fmt.Sprintf("Heap in use: %s", formatBytes(int64(memory.HeapInuse))),
		fmt.Sprintf("GC cycles: %d", memory.NumGC),
	}, "\n")
}

func (s *Service) CountsText() string {
	var usersTotal, icebergsTotal, responsesTotal, dbSizeBytes int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM aware_users`).Scan(&usersTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM icebergs`).Scan(&icebergsTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM iceberg_responses`).Scan(&responsesTotal)
	_ = s.db.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&dbSizeBytes)

	return strings.Join([]string{
		"Aware API Records",
		fmt.Sprintf("Users total: %d", usersTotal),
		fmt.Sprintf("Icebergs total: %d", icebergsTotal),
		fmt.Sprintf("Responses total: %d", responsesTotal),
		fmt.Sprintf("PostgreSQL DB size: %s", formatBytes(dbSizeBytes)),
	}, "\n")
}

func (s *Service) Snapshot() Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()
	diskTotal, diskFree := fsUsage(".")

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		DBOpenConnections:  stats.OpenConnections,
		DBInUseConnections: stats.InUse,
		DBWaitCount:        int64(stats.WaitCount),
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memory.Alloc,
		GoMemorySysBytes:   memory.Sys,
		GoHeapInUseBytes:   memory.HeapInuse,
		GoGCCount:          memory.NumGC,
		DiskTotalBytes:     diskTotal,
		DiskFreeBytes:      diskFree,
	}

	_ = s.db.QueryRow(`SELECT COUNT(*) FROM aware_users`).Scan(&snap.UsersTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM icebergs`).Scan(&snap.IcebergsTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM iceberg_responses`).Scan(&snap.ResponsesTotal)
	_ = s.db.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&snap.DBSizeBytes)

	return snap
}

func (s *Service) AllText() string {
	return strings.Join([]string{
		s.StatusText(),
		"",
		s.ConnectionsText(),
		"",
		s.RuntimeText(),
		"",
		s.CountsText(),
	}, "\n")
}

func formatBytes(value int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(value)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", value, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}
