package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse             = Response{}
	NotFoundResponse       = Response{"not found"}
	BadIDResponse          = Response{"bad id"}
	DBError1Response       = Response{"DB Error 1"}
	DBError2Response       = Response{"DB Error 2"}
	CommentersFullResponse = Response{"commenter limit reached for this artwork"}
	GalleryFullResponse    = Response{"gallery is full"}
)
