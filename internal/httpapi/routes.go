package httpapi

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.POST("/", s.summarize)
}
