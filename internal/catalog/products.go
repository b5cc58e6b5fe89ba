package catalog

import "github.com/lapescados/storefront/internal/domain"

// products is the static seafood catalog, read-only reference data. Prices
// are whole Kz per unit.
var products = []domain.Product{
	{SKU: "SKU0001", Name: "Chocos em tiras", Price: domain.NewKz(12850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/WhatsApp Image 2025-09-07 at 21.21.14.jpeg", Description: "Tiras de choco frescas, prontas para cozinhar."},
	{SKU: "SKU0002", Name: "Choco com tinta", Price: domain.NewKz(6850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/choco com tinta.jpg", Description: "Choco com tinta para pratos tradicionais."},
	{SKU: "SKU0003", Name: "Choco limpo", Price: domain.NewKz(8850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/choco.jpg", Description: "Choco limpo e pronto para consumo."},
	{SKU: "SKU0004", Name: "Choquinho", Price: domain.NewKz(2800), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/choquinho.jpg", Description: "Choquinhos pequenos, sabor delicado."},
	{SKU: "SKU0005", Name: "Polvo", Price: domain.NewKz(6500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/Polvo.jpg", Description: "Polvo fresco, ideal para grelhados e caldeiradas."},
	{SKU: "SKU0006", Name: "Lulas", Price: domain.NewKz(5500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/Lulas.jpg", Description: "Lulas inteiras, versáteis na cozinha."},
	{SKU: "SKU0007", Name: "Camarão de rissóis", Price: domain.NewKz(3500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/camarao a ressois.jpg", Description: "Camarão pequeno ideal para rissóis."},
	{SKU: "SKU0008", Name: "Camarão pequeno", Price: domain.NewKz(6950), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/WhatsApp Image 2025-09-07 at 22.18.09.jpeg", Description: "Camarão pequeno, perfeito para petiscos."},
	{SKU: "SKU0009", Name: "Camarão normal", Price: domain.NewKz(8850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/camarão normal.jpg", Description: "Camarão tamanho padrão, fresco."},
	{SKU: "SKU0010", Name: "Camarão Médio", Price: domain.NewKz(10850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/camarao medio.jpg", Description: "Camarão médio para pratos principais."},
	{SKU: "SKU0011", Name: "Caranguejo santola", Price: domain.NewKz(3700), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/caranguejo santola2.jpg", Description: "Caranguejo santola fresco."},
	{SKU: "SKU0012", Name: "Camarão graúdo", Price: domain.NewKz(12850), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/camarão normal.jpg", Description: "Camarão graúdo, bom para churrasco."},
	{SKU: "SKU0013", Name: "Gambas", Price: domain.NewKz(22600), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/gambas.jpg", Description: "Gambas selecionadas, alta qualidade."},
	{SKU: "SKU0014", Name: "Mexilhão", Price: domain.NewKz(3000), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/mexilhão.jpg", Description: "Mexilhão fresco, ótimo para molhos."},
	{SKU: "SKU0015", Name: "Amêijoas", Price: domain.NewKz(3500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/ameijoas.jpg", Description: "Amêijoas limpas e prontas."},
	{SKU: "SKU0016", Name: "Marquitas", Price: domain.NewKz(3500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/faltaimagem1.jpg", Description: "Marquitas fresquinhas."},
	{SKU: "SKU0017", Name: "Kingoles", Price: domain.NewKz(3000), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/kingole.jpg", Description: "Kingoles/berbigões para pratos tradicionais."},
	{SKU: "SKU0018", Name: "Lagosta", Price: domain.NewKz(23500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/Lagosta.jpg", Description: "Lagosta premium."},
	{SKU: "SKU0019", Name: "Lagostas bruxa", Price: domain.NewKz(11000), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/lagostas bruxas.jpg", Description: "Lagosta bruxa, sabor marcante."},
	{SKU: "SKU0020", Name: "Navalha", Price: domain.NewKz(3500), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/navalha.jpg", Description: "Navalhas frescas."},
	{SKU: "SKU0021", Name: "Tilápia chopas", Price: domain.NewKz(5650), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/images (12).jpeg", Description: "Tilápia fresca, sabor suave. Entrega em Luanda."},
	{SKU: "SKU0022", Name: "Tilápia pequenos (cacussos)", Price: domain.NewKz(3850), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/Tilapia pequenas.jpg", Description: "Tilápia pequena, ideal para fritar. Peixaria Angola."},
	{SKU: "SKU0023", Name: "Sardinha", Price: domain.NewKz(1950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/sardinha.jpg", Description: "Sardinha fresca do dia. Melhor peixaria em Luanda."},
	{SKU: "SKU0024", Name: "Macoas", Price: domain.NewKz(3950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/faltaimagem.jpg", Description: "Peixe macoas, sabor tradicional. Frutos do mar Angola."},
	{SKU: "SKU0025", Name: "Malessos", Price: domain.NewKz(1900), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/faltaimagem1.jpg", Description: "Malessos, bom preço e sabor. Pescados frescos."},
	{SKU: "SKU0026", Name: "Bagri", Price: domain.NewKz(3800), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/Bagre.jpg", Description: "Bagri fresco. Peixaria online Angola."},
	{SKU: "SKU0027", Name: "Santolas", Price: domain.NewKz(4200), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/santolas.jpg", Description: "Santolas selecionadas. Mariscos frescos Luanda."},
	{SKU: "SKU0028", Name: "Peixe Sofia", Price: domain.NewKz(3950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe sofia.jpg", Description: "Peixe Sofia fresco. Entrega rápida."},
	{SKU: "SKU0029", Name: "Corvina de prato", Price: domain.NewKz(4800), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/corvina.jpg", Description: "Corvina para servir inteira. Qualidade premium."},
	{SKU: "SKU0030", Name: "Calafate", Price: domain.NewKz(4500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/calafate.jpg", Description: "Calafate fresco. Peixes marinhos Angola."},
	{SKU: "SKU0031", Name: "Peixe tubarão (postas)", Price: domain.NewKz(5800), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/filete de tubarao.jpg", Description: "Postas de tubarão. Produtos marinhos frescos."},
	{SKU: "SKU0032", Name: "Garoupa das pedras", Price: domain.NewKz(3300), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/WhatsApp Image 2025-09-07 at 21.21.13.jpeg", Description: "Garoupa das pedras. Melhor qualidade em Luanda."},
	{SKU: "SKU0033", Name: "Garoupinhas", Price: domain.NewKz(5850), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/garoupinha.jpeg", Description: "Garoupinhas pequenas. Peixaria L&A Pescados."},
	{SKU: "SKU0034", Name: "Garoupas vermelhas", Price: domain.NewKz(6850), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/WhatsApp Image 2025-09-07 at 21.21.13.jpeg", Description: "Garoupa vermelha premium. Frutos do mar selecionados."},
	{SKU: "SKU0035", Name: "Bacalhau fresco", Price: domain.NewKz(4500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/Bacalhau fresco.jpg", Description: "Bacalhau fresco. Tradição e qualidade."},
	{SKU: "SKU0036", Name: "Peixe Santo Antônio", Price: domain.NewKz(3100), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe santo antonio.jpg", Description: "Peixe Santo Antônio. Peixaria em Angola."},
	{SKU: "SKU0037", Name: "Peixe Garoupas", Price: domain.NewKz(6850), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/garoupas.jpg", Description: "Garoupas maiores. Pescados frescos diariamente."},
	{SKU: "SKU0038", Name: "Garoupa cherne", Price: domain.NewKz(7250), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/garoupas.jpg", Description: "Garoupa tipo cherne. Qualidade superior."},
	{SKU: "SKU0039", Name: "Corvinas grandes", Price: domain.NewKz(6850), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/corvina.jpg", Description: "Corvinas grandes. Ideal para famílias."},
	{SKU: "SKU0040", Name: "Peixe Liro", Price: domain.NewKz(6500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe liro.jpg", Description: "Peixe Liro fresco. Entrega em Luanda."},
	{SKU: "SKU0041", Name: "Peixe Pargo", Price: domain.NewKz(6200), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe pargo.jpg", Description: "Pargo saboroso. Peixaria online de confiança."},
	{SKU: "SKU0042", Name: "Peixe Piazeite", Price: domain.NewKz(4300), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe piazeite.jpg", Description: "Piazeite fresco. Melhor preço em Angola."},
	{SKU: "SKU0043", Name: "Peixe Barbudo", Price: domain.NewKz(5500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe barbudo.jpg", Description: "Barbudo, muito apreciado. Qualidade garantida."},
	{SKU: "SKU0044", Name: "Peixe Parguete", Price: domain.NewKz(5700), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe parguete.jpg", Description: "Parguete fresco. Peixaria L&A Pescados e Mariscos."},
	{SKU: "SKU0045", Name: "Corvinas de prato", Price: domain.NewKz(4200), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/corvina.jpg", Description: "Corvinas para prato. Frescor garantido."},
	{SKU: "SKU0046", Name: "Tacutaco", Price: domain.NewKz(4500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/tacutaco.jpg", Description: "Tacutaco saboroso. Mariscos e peixes frescos."},
	{SKU: "SKU0047", Name: "Linguados", Price: domain.NewKz(4500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/linguado.jpg", Description: "Linguados macios. Qualidade premium Angola."},
	{SKU: "SKU0048", Name: "Corvinas brancas/pretas médias", Price: domain.NewKz(6300), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/corvina.jpg", Description: "Corvinas mistas médias. Variedade e qualidade."},
	{SKU: "SKU0049", Name: "Caxuxu", Price: domain.NewKz(4500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe caxuxo.jpg", Description: "Caxuxu fresco. Peixaria em Luanda com entrega."},
	{SKU: "SKU0050", Name: "Carapau médio", Price: domain.NewKz(5300), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/carapau medio.jpg", Description: "Carapau médio. Fresco todos os dias."},
	{SKU: "SKU0051", Name: "Carapau pequeno", Price: domain.NewKz(2900), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/carapau pequeno.jpg", Description: "Carapau pequeno para fritar. Preço competitivo."},
	{SKU: "SKU0052", Name: "Atum", Price: domain.NewKz(2950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/atum.jpg", Description: "Atum fresco. Melhor peixaria de Angola."},
	{SKU: "SKU0053", Name: "Peixe dourado", Price: domain.NewKz(4950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe dourado.jpg", Description: "Peixe dourado fresco. Qualidade e sabor."},
	{SKU: "SKU0054", Name: "Peixe prata", Price: domain.NewKz(4950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe prata.jpg", Description: "Peixe prata. Pescados selecionados."},
	{SKU: "SKU0055", Name: "Peixe Ferreira", Price: domain.NewKz(3500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe ferreira.jpg", Description: "Peixe Ferreira. Tradição em peixaria."},
	{SKU: "SKU0056", Name: "Caixa de caranguejo 28/30 (5kg)", Price: domain.NewKz(11500), Unit: "caixa (5kg)", Category: "mariscos", ImageRef: "Assets/Images/Produtos/caixa de caranguejo.jpg", Description: "Caixa com 28-30 caranguejos (cerca 5kg). Ideal para eventos."},
	{SKU: "SKU0057", Name: "Caranguejo kg (avulso)", Price: domain.NewKz(3000), Unit: "kg", Category: "mariscos", ImageRef: "Assets/Images/Produtos/caranguejo santola2.jpg", Description: "Caranguejo por kg. Mariscos frescos Luanda."},
	{SKU: "SKU0058", Name: "Peixe galo", Price: domain.NewKz(4950), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe galo.jpg", Description: "Peixe galo. Peixaria online Angola."},
	{SKU: "SKU0059", Name: "Peixe Ticherra", Price: domain.NewKz(3500), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe ticherra.jpg", Description: "Ticherra fresco. Entrega rápida em Luanda."},
	{SKU: "SKU0060", Name: "Peixe Arrancador", Price: domain.NewKz(3300), Unit: "kg", Category: "peixes", ImageRef: "Assets/Images/Produtos/peixe arrancador.jpg", Description: "Arrancador de qualidade. L&A Pescados e Mariscos."},
	{SKU: "SKU0061", Name: "Filetes de atum", Price: domain.NewKz(10500), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de atum.jpg", Description: "Filetes limpos de atum. Práticos e saborosos."},
	{SKU: "SKU0062", Name: "Filete de Garoupas", Price: domain.NewKz(17850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de garoupa.jpg", Description: "Filete premium de garoupa. Alta qualidade."},
	{SKU: "SKU0063", Name: "Filetes de pescada", Price: domain.NewKz(13850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de pescado.jpg", Description: "Filetes de pescada. Filetes de peixe Angola."},
	{SKU: "SKU0064", Name: "Filetes de tilápia (chopas)", Price: domain.NewKz(15850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de tilapia.jpg", Description: "Filetes de tilápia chopas. Prontos para cozinhar."},
	{SKU: "SKU0065", Name: "Filetes Corvinas", Price: domain.NewKz(15850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de corvina.jpg", Description: "Filetes de corvina. Sabor e qualidade."},
	{SKU: "SKU0066", Name: "Filetes de dourado", Price: domain.NewKz(13850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de dourado.jpg", Description: "Filetes de dourado. Peixaria L&A Angola."},
	{SKU: "SKU0067", Name: "Filetes de linguados", Price: domain.NewKz(13850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de linguado.jpg", Description: "Filetes de linguados. Textura macia."},
	{SKU: "SKU0068", Name: "Filetes de piazete", Price: domain.NewKz(12850), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de piazete.jpg", Description: "Filetes de piazete. Filetes frescos Luanda."},
	{SKU: "SKU0069", Name: "Filetes de Bacalhau", Price: domain.NewKz(14500), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/lombo de bacalhau.jpg", Description: "Filetes de bacalhau. Tradição portuguesa."},
	{SKU: "SKU0070", Name: "Filetes de peixe Sofia", Price: domain.NewKz(10500), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de sofia.jpg", Description: "Filetes do peixe Sofia. Práticos e saborosos."},
	{SKU: "SKU0071", Name: "Filetes de tubarão", Price: domain.NewKz(10500), Unit: "kg", Category: "filetes", ImageRef: "Assets/Images/Produtos/filete de tubarao.jpg", Description: "Filetes de tubarão. Textura firme."},
	{SKU: "SKU0072", Name: "Lombos de Atum", Price: domain.NewKz(10000), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/lombo de atum.jpg", Description: "Lombo de atum. Cortes premium Angola."},
	{SKU: "SKU0073", Name: "Lombos de pescada", Price: domain.NewKz(13200), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de pescado.jpg", Description: "Lombo de pescada. Qualidade superior."},
	{SKU: "SKU0074", Name: "Lombos de piazete", Price: domain.NewKz(12100), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de piazete.jpg", Description: "Lombo de piazete. Sabor intenso."},
	{SKU: "SKU0075", Name: "Lombos de garoupa", Price: domain.NewKz(17300), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de garoupa.jpg", Description: "Lombo de garoupa premium. Melhor peixaria Luanda."},
	{SKU: "SKU0076", Name: "Lombos de Sofia", Price: domain.NewKz(9000), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de sofia.jpg", Description: "Lombo de Sofia. Frescor garantido."},
	{SKU: "SKU0077", Name: "Lombos de tubarão", Price: domain.NewKz(9000), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de tubarao.jpg", Description: "Lombo de tubarão. Textura única."},
	{SKU: "SKU0078", Name: "Lombos de Corvinas", Price: domain.NewKz(15300), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/filete de corvina.jpg", Description: "Lombo de corvina grande. Ideal para assar."},
	{SKU: "SKU0079", Name: "Lombos de bacalhau", Price: domain.NewKz(12500), Unit: "kg", Category: "lombos", ImageRef: "Assets/Images/Produtos/lombo de bacalhau.jpg", Description: "Lombo de bacalhau. Sabor tradicional."},
}

