package config

// 窗口与加载界面配置常量

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// TopDownScale 俯视调试视图：每个世界单位对应的像素
	TopDownScale float64 = 6

	// LoadingBarWidth 加载进度条宽度
	LoadingBarWidth float64 = 400
	// LoadingBarHeight 加载进度条高度
	LoadingBarHeight float64 = 16
	// LoadingTextOffsetY 进度文字相对进度条的 Y 偏移
	LoadingTextOffsetY float64 = -24
)
