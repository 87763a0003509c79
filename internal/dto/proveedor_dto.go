package dto

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=100"`
	RUC       string  `json:"ruc" validate:"required,max=20"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
}

type ProveedorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	RUC       string  `json:"ruc"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Correo    *string `json:"correo"`
}
