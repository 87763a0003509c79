package dto

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=100"`
	Cedula    string  `json:"cedula" validate:"required,max=20"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Cedula    string  `json:"cedula"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Correo    *string `json:"correo"`
}
