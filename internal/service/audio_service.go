package service

import (
	"context"
	"fmt"
	"github.com/xfrr/goffmpeg/transcoder"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// AudioService конвертирует аудио через ffmpeg
type AudioService struct{}

func NewAudioService() (*AudioService, error) {
	// Проверяем наличие ffmpeg
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}
	return &AudioService{}, nil
}

// ConvertToMP3 перекодирует .wav в .mp3 через временные файлы
func (s *AudioService) ConvertToMP3(ctx context.Context, data []byte) ([]byte, error) {
	inputFile, err := os.CreateTemp(os.TempDir(), "record-*.wav")
	if err != nil {
		log.Printf("[AudioService] Failed to create temp file: %v", err)
		return nil, err
	}
	defer os.Remove(inputFile.Name())

	if _, err := inputFile.Write(data); err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := inputFile.Close(); err != nil {
		return nil, err
	}

	outputPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("%s.mp3", filepath.Base(inputFile.Name())))
	defer os.Remove(outputPath)

	trans := new(transcoder.Transcoder)

	if err := trans.Initialize(inputFile.Name(), outputPath); err != nil {
		log.Printf("[AudioService] Failed to initialize transcoder: %v", err)
		return nil, fmt.Errorf("failed to initialize transcoder: %w", err)
	}

	trans.MediaFile().SetAudioCodec("libmp3lame")
	trans.MediaFile().SetSkipVideo(true)

	// Запускаем транскодирование с обработкой отмены контекста
	done := trans.Run(false)
	select {
	case err := <-done:
		if err != nil {
			log.Printf("[AudioService] Transcoding failed: %v", err)
			return nil, fmt.Errorf("transcoding failed: %w", err)
		}
	case <-ctx.Done():
		log.Printf("[AudioService] Context canceled while transcoding")
		return nil, ctx.Err()
	}

	sound, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcoded audio: %w", err)
	}

	return sound, nil
}
