package validators

import "testing"

func validAppointment() AppointmentForm {
	return AppointmentForm{
		Name:    "Ana",
		Phone:   "11999998888",
		Address: "Rua das Flores 123",
		Date:    "2024-11-29",
		Time:    "10:00",
	}
}

func TestAppointmentFormValid(t *testing.T) {
	f := validAppointment()
	if ve := Struct(f); ve != nil {
		t.Fatalf("unexpected errors: %v", ve)
	}
}

func TestAppointmentFormFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppointmentForm)
		field   string
		message string
	}{
		{"short name", func(f *AppointmentForm) { f.Name = "A" }, "name", "O nome deve ter pelo menos 2 caracteres."},
		{"blank name", func(f *AppointmentForm) { f.Name = "   " }, "name", "O nome deve ter pelo menos 2 caracteres."},
		{"short phone", func(f *AppointmentForm) { f.Phone = "123" }, "phone", "Por favor, insira um telefone válido."},
		{"short address", func(f *AppointmentForm) { f.Address = "Rua" }, "address", "Por favor, insira um endereço completo."},
		{"missing date", func(f *AppointmentForm) { f.Date = "" }, "date", "A data do agendamento é obrigatória."},
		{"bad date", func(f *AppointmentForm) { f.Date = "29/11/2024" }, "date", "A data do agendamento é obrigatória."},
		{"bad time", func(f *AppointmentForm) { f.Time = "25:00" }, "time", "O horário do agendamento é obrigatório."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validAppointment()
			tt.mutate(&f)

			ve := Struct(f)
			if ve == nil || len(ve.Fields) != 1 {
				t.Fatalf("expected one field error, got %v", ve)
			}
			if ve.Fields[0].Field != tt.field || ve.Fields[0].Message != tt.message {
				t.Fatalf("got %+v", ve.Fields[0])
			}
		})
	}
}

func TestAppointmentFormReportsEveryInvalidField(t *testing.T) {
	ve := Struct(AppointmentForm{})
	if ve == nil || len(ve.Fields) != 5 {
		t.Fatalf("expected 5 field errors, got %v", ve)
	}
	if !ve.Has("date_required") || !ve.Has("time_required") || !ve.Has("invalid_name") {
		t.Fatalf("unexpected codes: %+v", ve.Fields)
	}
}

func TestSettingsFormBrandColor(t *testing.T) {
	base := SettingsForm{
		SiteName:     "La hermandad",
		ContactEmail: "contato@lahermandad.com",
		ContactPhone: "(11) 99999-8888",
	}

	for _, ok := range []string{"#F59E0B", "#fff", "#D97706"} {
		f := base
		f.BrandColor = ok
		if ve := Struct(f); ve != nil {
			t.Errorf("%s rejected: %v", ok, ve)
		}
	}
	for _, bad := range []string{"F59E0B", "#F59E", "#GGGGGG", "#F59E0B00", ""} {
		f := base
		f.BrandColor = bad
		ve := Struct(f)
		if ve == nil || ve.Fields[0].Field != "brand_color" {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestSettingsFormOtherFields(t *testing.T) {
	ve := Struct(SettingsForm{SiteName: "La", BrandColor: "#fff", ContactEmail: "nope", ContactPhone: "123"})
	if ve == nil || len(ve.Fields) != 3 {
		t.Fatalf("expected 3 errors, got %v", ve)
	}
}

func TestProductFormCategory(t *testing.T) {
	f := ProductForm{Name: "Terno Slim", Price: "750.00", Category: "Terno", Sizes: []string{"P", "M"}}
	if ve := Struct(f); ve != nil {
		t.Fatalf("unexpected: %v", ve)
	}

	f.Category = "Chapéu"
	ve := Struct(f)
	if ve == nil || ve.Fields[0].Field != "category" {
		t.Fatalf("expected category error, got %v", ve)
	}
}
