package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/restaurantcms/backend/config"
)

// 允许上传的图片扩展名
var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler 图片上传：uuid 文件名落盘，经 /uploads 静态路由回源
type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file is required")
		return
	}

	if file.Size > h.cfg.Upload.MaxSizeMB*1024*1024 {
		respondBadRequest(c, fmt.Sprintf("file exceeds %d MB limit", h.cfg.Upload.MaxSizeMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		respondBadRequest(c, fmt.Sprintf("file type %q is not allowed", ext))
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0755); err != nil {
		klog.Errorf("创建上传目录失败: %v", err)
		respondError(c, err)
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(h.cfg.Upload.Dir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		klog.Errorf("保存上传文件失败: %v", err)
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"filename": filename,
		"url":      "/uploads/" + filename,
	})
}
