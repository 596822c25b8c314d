package entities

// SeedCatalog returns the built-in HVAC service catalog written on first run.
// Prices start at zero; the user fills them in.
func SeedCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "svc-0001", Name: "Limpeza de filtros de ar", Category: "Manutenção Preventiva", Subcategory: "Filtros", Unit: "unidade", DefaultPrice: 0, Description: "Limpeza e substituição se necessário dos filtros de ar."},
		{ID: "svc-0002", Name: "Limpeza das serpentinas (evaporadora)", Category: "Manutenção Preventiva", Subcategory: "Serpentinas", Unit: "unidade", DefaultPrice: 0, Description: "Limpeza da evaporadora, remoção de sujeira e verificação de aletas."},
		{ID: "svc-0003", Name: "Limpeza das serpentinas (condensadora)", Category: "Manutenção Preventiva", Subcategory: "Serpentinas", Unit: "unidade", DefaultPrice: 0, Description: "Limpeza da condensadora e verificação de fluxo de ar."},
		{ID: "svc-0004", Name: "Verificação de pressões e temperaturas do gás", Category: "Manutenção Preventiva", Subcategory: "Verificações", Unit: "hora", DefaultPrice: 0, Description: "Medição de pressões e temperaturas para diagnóstico de performance."},
		{ID: "svc-0005", Name: "Teste elétrico e de amperagem", Category: "Manutenção Preventiva", Subcategory: "Elétrico", Unit: "hora", DefaultPrice: 0, Description: "Medir corrente, verificar carregamento e consumo."},
		{ID: "svc-0006", Name: "Limpeza do dreno e bandeja de condensado", Category: "Manutenção Preventiva", Subcategory: "Dreno", Unit: "unidade", DefaultPrice: 0, Description: "Desobstruir e sanitizar dreno e bandeja de condensado."},
		{ID: "svc-0007", Name: "Verificação de ruídos e vibrações", Category: "Manutenção Preventiva", Subcategory: "Testes", Unit: "hora", DefaultPrice: 0, Description: "Avaliação de ruídos, vibrações e alinhamento."},
		{ID: "svc-0008", Name: "Aperto de conexões elétricas e mecânicas", Category: "Manutenção Preventiva", Subcategory: "Manutenção leve", Unit: "hora", DefaultPrice: 0, Description: "Apertar conexões e fixações para segurança."},
		{ID: "svc-0009", Name: "Verificação de fixações, suportes e isolamento térmico", Category: "Manutenção Preventiva", Subcategory: "Estrutural", Unit: "unidade", DefaultPrice: 0, Description: "Inspeção de suportes, bases e isolamento térmico."},
		{ID: "svc-0010", Name: "Avaliação da performance geral e rendimento do equipamento", Category: "Manutenção Preventiva", Subcategory: "Performance", Unit: "hora", DefaultPrice: 0, Description: "Teste completo de performance e eficiência do equipamento."},

		{ID: "svc-0011", Name: "Substituição de peças (compressor, capacitor, etc.)", Category: "Manutenção Corretiva", Subcategory: "Substituição", Unit: "unidade", DefaultPrice: 0, Description: "Substituição de componentes danificados como compressor, capacitor, motor e sensores."},
		{ID: "svc-0012", Name: "Reparo de vazamento de gás refrigerante", Category: "Manutenção Corretiva", Subcategory: "Vazamentos", Unit: "unidade", DefaultPrice: 0, Description: "Localizar e soldar vazamentos em linhas de refrigerante."},
		{ID: "svc-0013", Name: "Recarregamento de gás refrigerante", Category: "Manutenção Corretiva", Subcategory: "Gás", Unit: "kg", DefaultPrice: 0, Description: "Carga de gás refrigerante com balança e manômetro."},
		{ID: "svc-0014", Name: "Substituição de componentes elétricos/eletrônicos", Category: "Manutenção Corretiva", Subcategory: "Elétrico", Unit: "unidade", DefaultPrice: 0, Description: "Troca de sensores, placas eletrônicas e componentes."},
		{ID: "svc-0015", Name: "Desobstrução do dreno", Category: "Manutenção Corretiva", Subcategory: "Dreno", Unit: "unidade", DefaultPrice: 0, Description: "Remoção de obstruções e limpeza do dreno."},
		{ID: "svc-0016", Name: "Reparo em tubulações de cobre", Category: "Manutenção Corretiva", Subcategory: "Tubulação", Unit: "metro", DefaultPrice: 0, Description: "Soldagem e substituição de trechos de tubulação de cobre."},
		{ID: "svc-0017", Name: "Substituição de ventiladores ou hélices", Category: "Manutenção Corretiva", Subcategory: "Ventilação", Unit: "unidade", DefaultPrice: 0, Description: "Troca de ventiladores/motores danificados."},
		{ID: "svc-0018", Name: "Recuperação de fios e conectores", Category: "Manutenção Corretiva", Subcategory: "Elétrica", Unit: "hora", DefaultPrice: 0, Description: "Reparar fiação, conectores e emendas."},

		{ID: "svc-0019", Name: "Termografia (detectar sobreaquecimento)", Category: "Manutenção Preditiva", Subcategory: "Instrumentação", Unit: "serviço", DefaultPrice: 0, Description: "Inspeção termográfica para identificar pontos quentes no sistema elétrico."},
		{ID: "svc-0020", Name: "Medição de vibração e ruído", Category: "Manutenção Preditiva", Subcategory: "Instrumentação", Unit: "serviço", DefaultPrice: 0, Description: "Análise de vibração para prever falhas mecânicas."},
		{ID: "svc-0021", Name: "Análise de pressão e temperatura", Category: "Manutenção Preditiva", Subcategory: "Instrumentação", Unit: "serviço", DefaultPrice: 0, Description: "Registro de pressões e temperaturas para monitoramento de tendência."},
		{ID: "svc-0022", Name: "Verificação de corrente elétrica e consumo", Category: "Manutenção Preditiva", Subcategory: "Instrumentação", Unit: "serviço", DefaultPrice: 0, Description: "Medição do consumo elétrico e corrente para diagnóstico energético."},
		{ID: "svc-0023", Name: "Monitoramento remoto (sistemas grandes)", Category: "Manutenção Preditiva", Subcategory: "Monitoramento", Unit: "instalação", DefaultPrice: 0, Description: "Configuração e instalação de monitoramento remoto de parâmetros."},

		{ID: "svc-0024", Name: "Lavagem completa da evaporadora (desmontagem)", Category: "Higienização / Limpeza Profunda", Subcategory: "Evaporadora", Unit: "serviço", DefaultPrice: 0, Description: "Lavagem completa com desmontagem, secagem e aplicação bactericida."},
		{ID: "svc-0025", Name: "Lavagem da condensadora", Category: "Higienização / Limpeza Profunda", Subcategory: "Condensadora", Unit: "serviço", DefaultPrice: 0, Description: "Lavagem externa da condensadora e verificação de desempenho."},
		{ID: "svc-0026", Name: "Aplicação de bactericida/fungicida", Category: "Higienização / Limpeza Profunda", Subcategory: "Sanitização", Unit: "serviço", DefaultPrice: 0, Description: "Aplicação de produtos bactericidas e fungicidas certificados."},
		{ID: "svc-0027", Name: "Limpeza da serpentina com produto químico", Category: "Higienização / Limpeza Profunda", Subcategory: "Serpentinas", Unit: "serviço", DefaultPrice: 0, Description: "Desobstrução química e limpeza profunda das serpentinas."},
		{ID: "svc-0028", Name: "Higienização do dreno e bandeja", Category: "Higienização / Limpeza Profunda", Subcategory: "Dreno", Unit: "serviço", DefaultPrice: 0, Description: "Sanitização completa do sistema de drenagem e bandeja."},
		{ID: "svc-0029", Name: "Limpeza do gabinete e carenagem", Category: "Higienização / Limpeza Profunda", Subcategory: "Gabinete", Unit: "serviço", DefaultPrice: 0, Description: "Limpeza e higienização do gabinete e componentes externos."},

		{ID: "svc-0030", Name: "Teste de vazamento com nitrogênio/detector", Category: "Recarga de Gás Refrigerante", Subcategory: "Testes", Unit: "serviço", DefaultPrice: 0, Description: "Teste de estanqueidade para localizar vazamentos."},
		{ID: "svc-0031", Name: "Soldagem e vedação do ponto de vazamento", Category: "Recarga de Gás Refrigerante", Subcategory: "Reparo", Unit: "serviço", DefaultPrice: 0, Description: "Soldagem e vedação especializada do ponto de vazamento."},
		{ID: "svc-0032", Name: "Vácuo da tubulação", Category: "Recarga de Gás Refrigerante", Subcategory: "Preparação", Unit: "serviço", DefaultPrice: 0, Description: "Vácuo da linha antes da carga de gás."},
		{ID: "svc-0033", Name: "Carga de gás correta (R410A/R22/R32)", Category: "Recarga de Gás Refrigerante", Subcategory: "Carga", Unit: "kg", DefaultPrice: 0, Description: "Carga de gás refrigerante com balança e medição precisa."},

		{ID: "svc-0034", Name: "Substituição de cabos e conectores", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Fiação", Unit: "metro", DefaultPrice: 0, Description: "Troca de cabos elétricos e conectores."},
		{ID: "svc-0035", Name: "Troca de disjuntores e fusíveis", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Proteção", Unit: "unidade", DefaultPrice: 0, Description: "Substituição de dispositivos de proteção elétrica."},
		{ID: "svc-0036", Name: "Reparo de placa eletrônica", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Eletrônica", Unit: "serviço", DefaultPrice: 0, Description: "Análise e reparo de placas eletrônicas."},
		{ID: "svc-0037", Name: "Troca de sensores de temperatura", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Sensores", Unit: "unidade", DefaultPrice: 0, Description: "Substituição e calibração de sensores."},
		{ID: "svc-0038", Name: "Verificação de aterramento", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Segurança", Unit: "serviço", DefaultPrice: 0, Description: "Teste de aterramento e segurança elétrica."},
		{ID: "svc-0039", Name: "Substituição de capacitor de partida", Category: "Serviços Elétricos e Eletrônicos", Subcategory: "Componentes", Unit: "unidade", DefaultPrice: 0, Description: "Troca de capacitores de partida e testes."},

		{ID: "svc-0040", Name: "Troca de suportes e bases antivibração", Category: "Serviços Mecânicos e Estruturais", Subcategory: "Suporte", Unit: "serviço", DefaultPrice: 0, Description: "Substituição de suportes, pads e bases antivibração."},
		{ID: "svc-0041", Name: "Substituição de carenagem danificada", Category: "Serviços Mecânicos e Estruturais", Subcategory: "Carenagem", Unit: "serviço", DefaultPrice: 0, Description: "Troca ou reparo da carenagem do equipamento."},
		{ID: "svc-0042", Name: "Reparo ou troca de ventoinha / hélice", Category: "Serviços Mecânicos e Estruturais", Subcategory: "Ventilação", Unit: "unidade", DefaultPrice: 0, Description: "Reparo ou substituição de hélice e motor de ventilador."},
		{ID: "svc-0043", Name: "Alinhamento do ventilador", Category: "Serviços Mecânicos e Estruturais", Subcategory: "Ventilação", Unit: "serviço", DefaultPrice: 0, Description: "Balanceamento e alinhamento do ventilador."},
		{ID: "svc-0044", Name: "Substituição de rolamentos e mancais", Category: "Serviços Mecânicos e Estruturais", Subcategory: "Mecânica", Unit: "unidade", DefaultPrice: 0, Description: "Troca de rolamentos, lubrificação e testes."},

		{ID: "svc-0045", Name: "Instalação completa (tubulação, elétrica, dreno)", Category: "Instalação e Reinstalação", Subcategory: "Instalação", Unit: "serviço", DefaultPrice: 0, Description: "Instalação completa do sistema com testes finais."},
		{ID: "svc-0046", Name: "Reinstalação / mudança de local", Category: "Instalação e Reinstalação", Subcategory: "Reinstalação", Unit: "serviço", DefaultPrice: 0, Description: "Desmontagem, transporte e reinstalação no novo local."},
		{ID: "svc-0047", Name: "Cálculo de carga térmica e dimensionamento", Category: "Instalação e Reinstalação", Subcategory: "Projeto", Unit: "serviço", DefaultPrice: 0, Description: "Dimensionamento e recomendação do equipamento ideal."},
		{ID: "svc-0048", Name: "Vácuo da linha e teste de estanqueidade", Category: "Instalação e Reinstalação", Subcategory: "Testes", Unit: "serviço", DefaultPrice: 0, Description: "Vácuo e teste obrigatório antes da carga de gás."},
		{ID: "svc-0049", Name: "Isolamento térmico das linhas", Category: "Instalação e Reinstalação", Subcategory: "Isolamento", Unit: "metro", DefaultPrice: 0, Description: "Aplicação de isolamento térmico nas tubulações."},

		{ID: "svc-0050", Name: "Plano de manutenção preventiva programada (PMOC)", Category: "Manutenção Administrativa (Gestão Técnica)", Subcategory: "Gestão", Unit: "plano", DefaultPrice: 0, Description: "Elaboração do plano de manutenção preventiva (PMOC)."},
		{ID: "svc-0051", Name: "Relatórios técnicos de inspeção", Category: "Manutenção Administrativa (Gestão Técnica)", Subcategory: "Documentação", Unit: "serviço", DefaultPrice: 0, Description: "Emissão de relatórios e laudos técnicos."},
		{ID: "svc-0052", Name: "Controle de trocas de filtros e peças", Category: "Manutenção Administrativa (Gestão Técnica)", Subcategory: "Gestão", Unit: "serviço", DefaultPrice: 0, Description: "Registro e controle de trocas e peças de manutenção."},
		{ID: "svc-0053", Name: "Registro de intervenções", Category: "Manutenção Administrativa (Gestão Técnica)", Subcategory: "Documentação", Unit: "serviço", DefaultPrice: 0, Description: "Registro formal de cada intervenção técnica."},

		{ID: "svc-0054", Name: "Instalação de automação (termostatos, Wi-Fi)", Category: "Serviços Especiais", Subcategory: "Automação", Unit: "serviço", DefaultPrice: 0, Description: "Instalação e configuração de dispositivos de automação e controle."},
		{ID: "svc-0055", Name: "Desodorização e sanitização com ozônio", Category: "Serviços Especiais", Subcategory: "Sanitização", Unit: "serviço", DefaultPrice: 0, Description: "Aplicação controlada de ozônio para desodorização e sanitização."},
		{ID: "svc-0056", Name: "Conversão de gás (ex: R22 → R410A)", Category: "Serviços Especiais", Subcategory: "Conversão", Unit: "serviço", DefaultPrice: 0, Description: "Conversão técnica do sistema para diferente tipo de gás."},
		{ID: "svc-0057", Name: "Balanceamento de dutos e vazão de ar", Category: "Serviços Especiais", Subcategory: "Dutos", Unit: "serviço", DefaultPrice: 0, Description: "Medição e balanceamento de dutos e vazão de ar."},
		{ID: "svc-0058", Name: "Isolamento acústico", Category: "Serviços Especiais", Subcategory: "Acústica", Unit: "serviço", DefaultPrice: 0, Description: "Soluções e implementação de isolamento para redução de ruído."},
		{ID: "svc-0059", Name: "Retrofit / modernização de sistemas antigos", Category: "Serviços Especiais", Subcategory: "Retrofit", Unit: "serviço", DefaultPrice: 0, Description: "Atualização e modernização de sistemas antigos para eficiência."},
	}
}
