package tui

import "testing"

// Benchmarks for hot-path rendering functions.
// These functions are called frequently during CLI output rendering.

func BenchmarkFormatPercent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FormatPercent(85.7)
	}
}

func BenchmarkRenderStatus(b *testing.B) {
	statuses := []string{"ok", "warning", "critical", "unknown"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, status := range statuses {
			_ = RenderStatus(status)
		}
	}
}

func BenchmarkRenderPriority(b *testing.B) {
	priorities := []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, priority := range priorities {
			_ = RenderPriority(priority)
		}
	}
}

func BenchmarkProgressBarRender(b *testing.B) {
	pb := DefaultProgressBar()
	percents := []float64{0, 25, 50, 75, 100}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pct := range percents {
			_ = pb.Render(pct)
		}
	}
}

func BenchmarkDetectOutputMode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DetectOutputMode(false, false, false)
	}
}
