package system

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func ffmpegName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// FindFFmpeg ищет бинарник ffmpeg комплектной поставки: рядом с исполняемым
// файлом, затем в его подпапке bin/. PATH — осознанный запасной вариант на
// случай, когда комплектного бинарника нет вовсе; комплектные пути всегда
// имеют приоритет над ним.
func FindFFmpeg() (string, error) {
	name := ffmpegName()

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates := []string{
			filepath.Join(dir, name),
			filepath.Join(dir, "bin", name),
		}
		for _, c := range candidates {
			if info, err := os.Stat(c); err == nil && !info.IsDir() {
				return c, nil
			}
		}
	}

	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}

	return "", fmt.Errorf("ffmpeg не найден ни рядом с программой, ни в PATH")
}

// FindLatestSession возвращает самый свежий файл сессии (.yaml/.yml/.json) в папке.
func FindLatestSession(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	extensions := []string{".yaml", ".yml", ".json"}
	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		isSession := false
		for _, ext := range extensions {
			if strings.HasSuffix(strings.ToLower(f.Name()), ext) {
				isSession = true
				break
			}
		}
		if isSession {
			info, err := f.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latestTime) {
				latestTime = info.ModTime()
				latestFile = filepath.Join(dir, f.Name())
			}
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов сессий", dir)
	}

	return latestFile, nil
}

// LogResources печатает сводку по ресурсам хоста перед запуском кодирования.
func LogResources() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] Не удалось получить информацию о памяти: %v", err)
		return
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		cores = runtime.NumCPU()
	}

	fmt.Printf("[*] Система: %d CPU | Память: %.1f из %.1f ГБ свободно\n",
		cores,
		float64(vm.Available)/(1<<30),
		float64(vm.Total)/(1<<30),
	)
}
