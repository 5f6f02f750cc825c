package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"media-gallery/internal/domain/dto"
)

const LIMIT = 3

type UploadProgress struct {
	mu        sync.RWMutex
	total     int
	uploaded  int
	failed    int
	startTime time.Time
}

func (up *UploadProgress) IncrementUploaded() {
	up.mu.Lock()
	defer up.mu.Unlock()
	up.uploaded++
}

func (up *UploadProgress) IncrementFailed() {
	up.mu.Lock()
	defer up.mu.Unlock()
	up.failed++
}

func (up *UploadProgress) GetProgress() (uploaded, failed, total int) {
	up.mu.RLock()
	defer up.mu.RUnlock()
	return up.uploaded, up.failed, up.total
}

func main() {
	server := flag.String("server", "http://localhost:3000/api", "Server base URL")
	token := flag.String("token", os.Getenv("MEDIA_GALLERY_TOKEN"), "Session token sent as Bearer")
	title := flag.String("title", "", "Video başlığı (boşsa dosya adı)")
	description := flag.String("description", "Uploaded from the command line", "Video açıklaması")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("kullanım: client [flags] video.mp4 [video2.mp4 ...]")
	}

	// İptal sinyalini yakala
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Sunucu: %s\n", *server)
	fmt.Printf("Dosya sayısı: %d\n", len(files))
	fmt.Println("Ctrl+C ile iptal edebilirsiniz...")

	endpoint := strings.TrimRight(*server, "/") + "/video-upload"
	sem := make(chan struct{}, LIMIT)
	var wg sync.WaitGroup
	progress := &UploadProgress{total: len(files), startTime: time.Now()}

	for _, path := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			name := *title
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			resp, err := uploadVideo(ctx, endpoint, *token, path, name, *description)
			if err != nil {
				log.Printf("%s yüklenemedi: %v\n", path, err)
				progress.IncrementFailed()
				return
			}

			progress.IncrementUploaded()
			fmt.Printf("%s -> id=%s publicId=%s %s -> %s bytes, %ds\n",
				path, resp.VideoID, resp.Video.PublicID,
				resp.Video.OriginalSize, resp.Video.CompressedSize, resp.Video.Duration)
		}(path)
	}
	wg.Wait()

	uploaded, failed, total := progress.GetProgress()
	fmt.Printf("Upload tamamlandı: %d/%d başarılı, %d hata (%s)\n",
		uploaded, total, failed, time.Since(progress.startTime).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

// uploadVideo streams the file as multipart so large videos are not buffered twice.
func uploadVideo(ctx context.Context, endpoint, token, path, title, description string) (*dto.VideoUploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("dosya bilgisi alınamadı: %w", err)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		writer.WriteField("title", title)
		writer.WriteField("description", description)
		writer.WriteField("originalSize", strconv.FormatInt(stat.Size(), 10))

		part, err := writer.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("HTTP %d %s: %s", resp.StatusCode, apiErr.Code, apiErr.Error)
		}
		return nil, fmt.Errorf("HTTP %d %s", resp.StatusCode, string(body))
	}

	var out dto.VideoUploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("yanıt okunamadı: %w", err)
	}
	return &out, nil
}
