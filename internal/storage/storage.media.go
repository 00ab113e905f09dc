package storage

import (
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"video_tube/internal/common"
)

// ProbeDuration đọc duration (giây) của một file media bằng ffprobe.
// ffprobe trả về JSON, duration nằm trong format.duration dưới dạng chuỗi số.
func ProbeDuration(localPath string) (float64, error) {
	probeJSON, err := ffmpeg.Probe(localPath)
	if err != nil {
		return 0, common.NewError(common.ErrCodeValidationFormat, "Không thể đọc metadata của file media", common.StatusBadRequest, err)
	}

	duration := gjson.Get(probeJSON, "format.duration")
	if !duration.Exists() {
		return 0, common.NewError(common.ErrCodeValidationFormat, "File media không có thông tin duration", common.StatusBadRequest, nil)
	}

	return duration.Float(), nil
}
