package validators

// ======================================================
// Public forms
// ======================================================

// AppointmentForm is the home-visit scheduling form.
type AppointmentForm struct {
	Name    string `json:"name" form:"name" validate:"trimmedmin=2" message:"O nome deve ter pelo menos 2 caracteres."`
	Phone   string `json:"phone" form:"phone" validate:"trimmedmin=10" message:"Por favor, insira um telefone válido."`
	Address string `json:"address" form:"address" validate:"trimmedmin=10" message:"Por favor, insira um endereço completo."`
	Date    string `json:"date" form:"date" validate:"required,datetime=2006-01-02" message:"A data do agendamento é obrigatória."`
	Time    string `json:"time" form:"time" validate:"required,datetime=15:04" message:"O horário do agendamento é obrigatório."`
}

// ======================================================
// Admin forms
// ======================================================

type SettingsForm struct {
	SiteName     string `json:"site_name" validate:"trimmedmin=3" message:"O nome do site deve ter pelo menos 3 caracteres."`
	BrandColor   string `json:"brand_color" validate:"brandcolor"`
	ContactEmail string `json:"contact_email" validate:"email"`
	ContactPhone string `json:"contact_phone" validate:"trimmedmin=10" message:"Por favor, insira um telefone válido."`
	FooterQuote  string `json:"footer_quote" validate:"max=500"`
}

type ProductForm struct {
	Name     string   `json:"name" form:"name" validate:"trimmedmin=2,max=150" message:"Informe o nome do produto."`
	Brand    string   `json:"brand" form:"brand" validate:"max=100"`
	Price    string   `json:"price" form:"price" validate:"required,numeric" message:"Informe um preço válido."`
	Category string   `json:"category" form:"category" validate:"required,oneof=Terno Camisa Gravata Sapato Cinto Meia" message:"Escolha uma categoria válida."`
	Sizes    []string `json:"sizes" form:"sizes" validate:"dive,trimmedmin=1,max=10"`
}

type BannerForm struct {
	Title      string `json:"title" form:"title" validate:"trimmedmin=2,max=150" message:"Informe o título do banner."`
	Subtitle   string `json:"subtitle" form:"subtitle" validate:"max=255"`
	ButtonText string `json:"button_text" form:"button_text" validate:"max=50"`
	ButtonLink string `json:"button_link" form:"button_link" validate:"max=500"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required" message:"Informe a senha."`
}

type PricingForm struct {
	ProductID *uint  `json:"product_id"`
	Cost      string `json:"cost" validate:"omitempty,numeric" message:"Informe um preço de custo válido."`
	SellPrice string `json:"sell_price" validate:"omitempty,numeric" message:"Informe um preço de venda válido."`
}
