package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errCooldown  = errors.New("capture on cooldown")
	errCapturing = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}
}

// CaptureProfile starts a background capture tagged with reason
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return errCapturing
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", errCooldown, since.Round(time.Second))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

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
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
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
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", path)
	return nil
}

// summarize logs where the capture went and the heap at that moment
func (p *Profiler) summarize(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Could not inspect profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Profile %s (%.2f KB), view with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, path)
	log.Printf("Heap at capture: Alloc=%d KB Sys=%d KB NumGC=%d HeapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// FrameWatch samples the frame rate every half second and asks the
// profiler for a capture when it falls below a threshold
type FrameWatch struct {
	profiler  *Profiler
	threshold float64
	warmup    time.Duration
	started   time.Time
	lastCheck time.Time
}

// NewFrameWatch creates a watch that stays quiet for warmup after start
func NewFrameWatch(profiler *Profiler, threshold float64, warmup time.Duration) *FrameWatch {
	now := time.Now()
	return &FrameWatch{
		profiler:  profiler,
		threshold: threshold,
		warmup:    warmup,
		started:   now,
		lastCheck: now,
	}
}

// Observe checks fps at now and reports whether a capture was started
func (w *FrameWatch) Observe(now time.Time, fps float64, entities int) bool {
	if w == nil || w.profiler == nil {
		return false
	}
	if now.Sub(w.lastCheck) < 500*time.Millisecond {
		return false
	}
	w.lastCheck = now
	if now.Sub(w.started) < w.warmup || fps >= w.threshold {
		return false
	}

	reason := fmt.Sprintf("fps%.0f-entities%d", fps, entities)
	if err := w.profiler.CaptureProfile(reason); err != nil {
		if !errors.Is(err, errCooldown) && !errors.Is(err, errCapturing) {
			log.Printf("Failed to capture profile: %v", err)
		}
		return false
	}
	log.Printf("FPS drop detected (%.0f FPS), capturing profile", fps)
	return true
}
