package content

// Service сервис контента публичного сайта: карта, меню дня,
// достопримечательности, события и галерея
type Service struct {
	menuRepo    MenuRepository
	contentRepo ContentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(menuRepo MenuRepository, contentRepo ContentRepository, logger Logger) *Service {
	return &Service{
		menuRepo:    menuRepo,
		contentRepo: contentRepo,
		logger:      logger,
	}
}
