package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"sidescroller/logging"
)

// Profiler captures a CPU profile and an execution trace when a tick runs
// longer than its budget
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	budget          time.Duration
	log             *logging.Logger
	now             func() time.Time
}

// NewProfiler returns a profiler for ticks slower than budget. A zero budget disables it.
func NewProfiler(dir string, budget time.Duration, log *logging.Logger) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		budget:          budget,
		log:             log,
		now:             time.Now,
	}
}

// Observe reports one tick duration and starts a capture when it is over budget.
// It returns true when a capture was started.
func (p *Profiler) Observe(tick time.Duration, reason string) bool {
	if p.budget <= 0 || tick <= p.budget {
		return false
	}
	if err := p.CaptureProfile(reason); err != nil {
		p.log.Debugf("skip profile: %v", err)
		return false
	}
	p.log.Warnf("slow tick %v (budget %v), capturing profile %q", tick, p.budget, reason)
	return true
}

// CaptureProfile captures a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := p.now().Sub(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := fmt.Sprintf("slow-tick-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Errorf("capture CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Errorf("capture trace: %v", err)
			}
		}()
		wg.Wait()

		p.summarize(baseName)
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Infof("CPU profile saved to %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Infof("trace saved to %s", path)
	return nil
}

// summarize logs the profile location and memory stats
func (p *Profiler) summarize(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.log.Warnf("could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Infof("profile %s (%.2f KB); view with: go tool pprof -http=:8080 %s", path, float64(info.Size())/1024, path)
	p.log.Infof("memory at capture: alloc=%dKB sys=%dKB numGC=%d heapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
