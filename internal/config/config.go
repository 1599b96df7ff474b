package config

const (
	DefaultFrameDelay = 1500
	DefaultWidth      = 800
	DefaultLoops      = 0
)

type GifOptions struct {
	FrameDelay int // мс на кадр
	Width      int // ширина, высота подбирается по аспекту
	Quality    int // 1..100, 0 = палитра энкодера по умолчанию
	Loops      int // 0 = бесконечный цикл
}

// Normalize накладывает значения по умолчанию поверх нулевых полей.
func (o *GifOptions) Normalize() {
	if o.FrameDelay <= 0 {
		o.FrameDelay = DefaultFrameDelay
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Loops < 0 {
		o.Loops = DefaultLoops
	}
	if o.Quality < 0 {
		o.Quality = 0
	}
	if o.Quality > 100 {
		o.Quality = 100
	}
}

// FPS возвращает частоту кадров для фильтров ffmpeg (1000/delay).
func (o *GifOptions) FPS() float64 {
	return 1000.0 / float64(o.FrameDelay)
}
