package exporter

// ProgressEvent 导出进度
type ProgressEvent struct {
	Percent int    `json:"percent"`
	Sheet   string `json:"sheet"` // 刚写完的 Sheet，或 start/done
}

func reportProgress(progress func(ProgressEvent), percent int, sheet string) {
	if progress == nil {
		return
	}
	progress(ProgressEvent{Percent: min(max(percent, 0), 100), Sheet: sheet})
}
